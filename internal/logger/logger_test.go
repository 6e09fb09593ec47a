package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name  string
		json  bool
		debug bool
	}{
		{name: "console info"},
		{name: "json info", json: true},
		{name: "console debug", debug: true},
		{name: "json debug", json: true, debug: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.json, tc.debug)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if l == nil {
				t.Fatal("expected logger")
			}
			if got := l.Core().Enabled(zapcore.DebugLevel); got != tc.debug {
				t.Fatalf("debug enabled = %v, want %v", got, tc.debug)
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("expected nop logger")
	}
}
