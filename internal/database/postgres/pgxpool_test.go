package postgres

import (
	"testing"
	"time"

	"talent-match/internal/config"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		DBHost:     " db.local ",
		DBPort:     "5433",
		DBUser:     "svc",
		DBPassword: `it's a \secret`,
		DBName:     "talent",
		DBSSLMode:  "require",
	})
	want := `host='db.local' port='5433' user='svc' password='it\'s a \\secret' dbname='talent' sslmode='require'`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	if got := DSN(config.DatabaseConfig{DBHost: "h", DBName: "n"}); got != `host='h' dbname='n'` {
		t.Fatalf("expected empty keys skipped, got %s", got)
	}
}

func TestPoolConfig_AppliesSettings(t *testing.T) {
	pcfg, err := poolConfig(config.DatabaseConfig{
		DBHost:              "localhost",
		DBName:              "talent",
		DBUser:              "svc",
		ApplicationName:     "talent-match",
		ConnectTimeout:      3 * time.Second,
		PoolMaxConns:        12,
		PoolMinConns:        2,
		PoolMaxConnLifetime: time.Hour,
	})
	if err != nil {
		t.Fatalf("poolConfig: %v", err)
	}
	if pcfg.MaxConns != 12 || pcfg.MinConns != 2 || pcfg.MaxConnLifetime != time.Hour {
		t.Fatalf("unexpected pool settings: max=%d min=%d life=%v", pcfg.MaxConns, pcfg.MinConns, pcfg.MaxConnLifetime)
	}
	if pcfg.ConnConfig.ConnectTimeout != 3*time.Second {
		t.Fatalf("expected connect timeout 3s, got %v", pcfg.ConnConfig.ConnectTimeout)
	}
	if pcfg.ConnConfig.RuntimeParams["application_name"] != "talent-match" {
		t.Fatalf("expected application_name, got %v", pcfg.ConnConfig.RuntimeParams)
	}
}

func TestNilPool(t *testing.T) {
	var p *Pool
	if err := p.Ping(t.Context()); err == nil {
		t.Fatal("expected error from nil pool")
	}
	if err := p.QueryRow(t.Context(), "SELECT 1").Scan(); err == nil {
		t.Fatal("expected error row from nil pool")
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
