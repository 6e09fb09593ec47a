package migration

import (
	"strings"
	"testing"
	"testing/fstest"

	"talent-match/migrations"
)

func TestLoad_OrdersAndChecksums(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__second.sql":  {Data: []byte("CREATE TABLE b (id INT);")},
		"V1__first.sql":   {Data: []byte("  CREATE TABLE a (id INT);\n")},
		"README.md":       {Data: []byte("ignored")},
		"V3_bad_name.sql": {Data: []byte("ignored")},
	}
	migs, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Fatalf("unexpected order: %d, %d", migs[0].Version, migs[1].Version)
	}
	if migs[0].SQL != "CREATE TABLE a (id INT);" {
		t.Fatalf("expected trimmed sql, got %q", migs[0].SQL)
	}
	if len(migs[0].Checksum) != 64 {
		t.Fatalf("expected hex sha256, got %q", migs[0].Checksum)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"duplicate": {
			"V1__a.sql":  {Data: []byte("SELECT 1;")},
			"V01__b.sql": {Data: []byte("SELECT 2;")},
		},
		"empty": {
			"V1__a.sql": {Data: []byte("   ")},
		},
	}
	for name, fsys := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(fsys); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestPending(t *testing.T) {
	migs := []Migration{
		{Version: 1, Name: "a", Checksum: "aaa"},
		{Version: 2, Name: "b", Checksum: "bbb"},
	}

	got, err := Pending(migs, map[int64]string{1: "aaa"})
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(got) != 1 || got[0].Version != 2 {
		t.Fatalf("unexpected pending: %+v", got)
	}

	_, err = Pending(migs, map[int64]string{1: "changed"})
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}

func TestEmbeddedMigrationsLoad(t *testing.T) {
	migs, err := Load(migrations.FS)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(migs) == 0 || migs[0].Version != 1 {
		t.Fatalf("expected V1 migration, got %+v", migs)
	}
}
