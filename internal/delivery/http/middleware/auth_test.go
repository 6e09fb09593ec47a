package middleware

import "testing"

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer   abc.def  ", "abc.def", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer    ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
	}
	for _, tc := range cases {
		got, ok := bearerTokenFromHeader(tc.header)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%q: expected (%q, %v), got (%q, %v)", tc.header, tc.want, tc.ok, got, ok)
		}
	}
}
