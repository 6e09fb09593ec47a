package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "TALENT_MATCH"

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Ranking  RankingConfig  `mapstructure:"ranking"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
}

type AppConfig struct {
	AppName       string `mapstructure:"name"`
	Environment   string `mapstructure:"env"`
	HTTPPort      string `mapstructure:"http_port"`
	LogJSON       bool   `mapstructure:"log_json"`
	LogDebug      bool   `mapstructure:"log_debug"`
	MigrationsDir string `mapstructure:"migrations_dir"`
}

type DatabaseConfig struct {
	DBHost     string `mapstructure:"host"`
	DBPort     string `mapstructure:"port"`
	DBName     string `mapstructure:"name"`
	DBUser     string `mapstructure:"user"`
	DBPassword string `mapstructure:"password"`
	DBSSLMode  string `mapstructure:"ssl_mode"`

	ApplicationName string `mapstructure:"application_name"`

	ConnectTimeout        time.Duration `mapstructure:"connect_timeout"`
	PoolMaxConns          int32         `mapstructure:"pool_max_conns"`
	PoolMinConns          int32         `mapstructure:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `mapstructure:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `mapstructure:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `mapstructure:"pool_health_check_period"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func (r RedisConfig) Addr() string {
	return strings.TrimSpace(r.Host) + ":" + strings.TrimSpace(r.Port)
}

type JWTConfig struct {
	AccessSecret    string        `mapstructure:"access_secret"`
	AccessExpiresIn time.Duration `mapstructure:"access_expires_in"`
}

type RankingConfig struct {
	Workers          int     `mapstructure:"workers"`
	HydrationRPS     float64 `mapstructure:"hydration_rps"`
	HydrationBurst   int     `mapstructure:"hydration_burst"`
	DefaultLimit     int     `mapstructure:"default_limit"`
	MaxLimit         int     `mapstructure:"max_limit"`
	CandidatePoolMax int     `mapstructure:"candidate_pool_max"` // 0 ranks every eligible entity

	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type ScoringConfig struct {
	WeightsFile string `mapstructure:"weights_file"`
}

var errMissingRequired = errors.New("missing required configuration")

var requiredKeys = []string{
	"database.host",
	"database.name",
	"database.user",
	"jwt.access_secret",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "talent-match")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "8080")
	v.SetDefault("app.log_json", false)
	v.SetDefault("app.log_debug", false)
	v.SetDefault("app.migrations_dir", "")

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.application_name", "talent-match")
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("database.pool_max_conns", 10)
	v.SetDefault("database.pool_min_conns", 0)
	v.SetDefault("database.pool_max_conn_lifetime", time.Hour)
	v.SetDefault("database.pool_max_conn_idle_time", 30*time.Minute)
	v.SetDefault("database.pool_health_check_period", time.Minute)

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 10*time.Minute)

	v.SetDefault("jwt.access_expires_in", time.Hour)

	v.SetDefault("ranking.workers", 8)
	v.SetDefault("ranking.hydration_rps", 200.0)
	v.SetDefault("ranking.hydration_burst", 20)
	v.SetDefault("ranking.default_limit", 20)
	v.SetDefault("ranking.max_limit", 50)
	v.SetDefault("ranking.candidate_pool_max", 0)
	v.SetDefault("ranking.request_timeout", 5*time.Second)

	v.SetDefault("scoring.weights_file", "")
}

// Load reads an optional YAML file at path and overlays TALENT_MATCH_* environment
// variables, e.g. TALENT_MATCH_DATABASE_HOST for database.host.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range requiredKeys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var missing []string
	for _, k := range requiredKeys {
		if strings.TrimSpace(v.GetString(k)) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequired, strings.Join(missing, ", "))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
