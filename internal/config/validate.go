package config

import "fmt"

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return fmt.Errorf("invalid configuration: %v", v.Errors)
}

func Validate(cfg Config) Validation {
	var res Validation

	if cfg.App.HTTPPort == "" {
		res.addErr("app.http_port is required")
	}

	r := cfg.Ranking
	if r.Workers <= 0 {
		res.addErr("ranking.workers must be > 0")
	} else if r.Workers > 64 {
		res.addWarn("ranking.workers is very high (%d) and may exhaust the database pool.", r.Workers)
	}
	if int32(r.Workers) > cfg.Database.PoolMaxConns && cfg.Database.PoolMaxConns > 0 {
		res.addWarn("ranking.workers (%d) exceeds database.pool_max_conns (%d); hydration will queue on the pool.", r.Workers, cfg.Database.PoolMaxConns)
	}
	if r.HydrationRPS < 0 {
		res.addErr("ranking.hydration_rps must be >= 0")
	}
	if r.HydrationRPS > 0 && r.HydrationBurst <= 0 {
		res.addErr("ranking.hydration_burst must be > 0 when hydration_rps is set")
	}
	if r.MaxLimit <= 0 {
		res.addErr("ranking.max_limit must be > 0")
	}
	if r.DefaultLimit <= 0 {
		res.addErr("ranking.default_limit must be > 0")
	} else if r.MaxLimit > 0 && r.DefaultLimit > r.MaxLimit {
		res.addErr("ranking.default_limit (%d) must not exceed ranking.max_limit (%d)", r.DefaultLimit, r.MaxLimit)
	}
	if r.CandidatePoolMax < 0 {
		res.addErr("ranking.candidate_pool_max must be >= 0")
	} else if r.CandidatePoolMax > 0 {
		res.addWarn("ranking.candidate_pool_max (%d) caps the ranked pool; totals are lower bounds once it is hit.", r.CandidatePoolMax)
	}

	if r.RequestTimeout < 0 {
		res.addErr("ranking.request_timeout must be >= 0")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" || cfg.Redis.Port == "" {
			res.addErr("redis.host and redis.port are required when redis.enabled=true")
		}
		if cfg.Redis.TTL <= 0 {
			res.addWarn("redis.ttl is not positive; score cache entries will not expire.")
		}
	}

	if len(cfg.JWT.AccessSecret) < 32 {
		res.addWarn("jwt.access_secret is shorter than 32 bytes.")
	}

	return res
}
