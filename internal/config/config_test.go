package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("TALENT_MATCH_DATABASE_HOST", "db.local")
	t.Setenv("TALENT_MATCH_DATABASE_NAME", "talent")
	t.Setenv("TALENT_MATCH_DATABASE_USER", "svc")
	t.Setenv("TALENT_MATCH_JWT_ACCESS_SECRET", strings.Repeat("s", 32))
}

func TestLoad_EnvOnly(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TALENT_MATCH_RANKING_WORKERS", "3")
	t.Setenv("TALENT_MATCH_REDIS_TTL", "90s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.DBHost != "db.local" || cfg.Database.DBName != "talent" || cfg.Database.DBUser != "svc" {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Database.DBPort != "5432" {
		t.Fatalf("expected default port, got %q", cfg.Database.DBPort)
	}
	if cfg.Ranking.Workers != 3 {
		t.Fatalf("workers = %d, want 3", cfg.Ranking.Workers)
	}
	if cfg.Redis.TTL != 90*time.Second {
		t.Fatalf("redis ttl = %v, want 90s", cfg.Redis.TTL)
	}
	if cfg.Ranking.DefaultLimit != 20 || cfg.Ranking.MaxLimit != 50 {
		t.Fatalf("unexpected pagination defaults: %+v", cfg.Ranking)
	}
	if cfg.Ranking.RequestTimeout != 5*time.Second {
		t.Fatalf("request timeout = %v, want 5s", cfg.Ranking.RequestTimeout)
	}
	if cfg.Ranking.CandidatePoolMax != 0 {
		t.Fatalf("expected an uncapped pool by default, got %d", cfg.Ranking.CandidatePoolMax)
	}
	if v := Validate(cfg); !v.OK() {
		t.Fatalf("expected valid config, got %v", v.Errors)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("TALENT_MATCH_DATABASE_HOST", "db.local")

	_, err := Load("")
	if !errors.Is(err, errMissingRequired) {
		t.Fatalf("expected errMissingRequired, got %v", err)
	}
	for _, k := range []string{"database.name", "database.user", "jwt.access_secret"} {
		if !strings.Contains(err.Error(), k) {
			t.Fatalf("expected %q in error %q", k, err.Error())
		}
	}
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talent-match.yaml")
	body := `
app:
  http_port: "9090"
database:
  host: file-host
  name: talent
  user: svc
jwt:
  access_secret: file-secret-file-secret-file-secret
ranking:
  workers: 4
  max_limit: 30
  default_limit: 10
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TALENT_MATCH_DATABASE_HOST", "env-host")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.DBHost != "env-host" {
		t.Fatalf("expected env override, got %q", cfg.Database.DBHost)
	}
	if cfg.App.HTTPPort != "9090" || cfg.Ranking.Workers != 4 || cfg.Ranking.MaxLimit != 30 {
		t.Fatalf("file values not applied: %+v %+v", cfg.App, cfg.Ranking)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			App:      AppConfig{HTTPPort: "8080"},
			Database: DatabaseConfig{PoolMaxConns: 10},
			Redis:    RedisConfig{Enabled: true, Host: "localhost", Port: "6379", TTL: time.Minute},
			JWT:      JWTConfig{AccessSecret: strings.Repeat("k", 32)},
			Ranking:  RankingConfig{Workers: 4, HydrationRPS: 100, HydrationBurst: 10, DefaultLimit: 20, MaxLimit: 50},
		}
	}

	cases := []struct {
		name      string
		mutate    func(*Config)
		wantErrs  int
		wantWarns int
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero workers", mutate: func(c *Config) { c.Ranking.Workers = 0 }, wantErrs: 1},
		{name: "default above max", mutate: func(c *Config) { c.Ranking.DefaultLimit = 60 }, wantErrs: 1},
		{name: "rps without burst", mutate: func(c *Config) { c.Ranking.HydrationBurst = 0 }, wantErrs: 1},
		{name: "workers above pool", mutate: func(c *Config) { c.Ranking.Workers = 20 }, wantWarns: 1},
		{name: "negative pool cap", mutate: func(c *Config) { c.Ranking.CandidatePoolMax = -1 }, wantErrs: 1},
		{name: "capped pool", mutate: func(c *Config) { c.Ranking.CandidatePoolMax = 500 }, wantWarns: 1},
		{name: "redis without host", mutate: func(c *Config) { c.Redis.Host = "" }, wantErrs: 1},
		{name: "short secret", mutate: func(c *Config) { c.JWT.AccessSecret = "x" }, wantWarns: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			v := Validate(cfg)
			if len(v.Errors) != tc.wantErrs {
				t.Fatalf("errors = %v, want %d", v.Errors, tc.wantErrs)
			}
			if len(v.Warnings) != tc.wantWarns {
				t.Fatalf("warnings = %v, want %d", v.Warnings, tc.wantWarns)
			}
			if (v.Err() == nil) != (tc.wantErrs == 0) {
				t.Fatalf("Err() = %v", v.Err())
			}
		})
	}
}
