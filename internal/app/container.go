package app

import (
	"context"
	"fmt"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/domain/matching"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/ranking"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"go.uber.org/zap"
)

type Repositories struct {
	Profiles     repository.ProfileRepository
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
	UserSkills   repository.UserSkillRepository
	Catalog      repository.CatalogRepository
	Companies    repository.CompanyRepository
	Tx           repository.Transactor
}

type Usecases struct {
	Matching       usecase.MatchingUsecase
	Recommendation usecase.RecommendationUsecase
	Profile        usecase.ProfileUsecase
	Jobs           usecase.JobUsecase
	Companies      usecase.CompanyUsecase
}

type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	DB      database.DB
	Cache   *cache.Redis
	JWT     jwt.Service
	Weights matching.Weights
	Engine  *ranking.Engine

	Repos    Repositories
	Usecases Usecases
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	weights, err := config.LoadWeights(cfg.Scoring.WeightsFile)
	if err != nil {
		return nil, err
	}
	scorer, err := matching.NewScorer(&weights)
	if err != nil {
		return nil, fmt.Errorf("scorer: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	rc := cache.NewRedis(ctx, cfg.Redis, logger.Named("cache"))
	var scoreCache *usecase.ScoreCache
	if rc.Enabled() {
		scoreCache = usecase.NewScoreCache(rc, cfg.Redis.TTL, weights, logger.Named("score_cache"))
	}

	engine := ranking.NewEngine(ranking.Config{
		Workers:        cfg.Ranking.Workers,
		HydrationRPS:   cfg.Ranking.HydrationRPS,
		HydrationBurst: cfg.Ranking.HydrationBurst,
	}, logger.Named("ranking"))

	repos := Repositories{
		Profiles:     repository.NewPostgresProfileRepository(db),
		Jobs:         repository.NewPostgresJobRepository(db),
		Applications: repository.NewPostgresApplicationRepository(db),
		UserSkills:   repository.NewPostgresUserSkillRepository(db),
		Catalog:      repository.NewPostgresCatalogRepository(db),
		Companies:    repository.NewPostgresCompanyRepository(db),
		Tx:           repository.NewPostgresTransactor(db),
	}

	scoring := usecase.NewScoring(scorer, scoreCache)
	ucs := Usecases{
		Matching: usecase.NewMatchingUsecase(repos.Profiles, repos.Jobs, repos.Applications, scoring),
		Recommendation: usecase.NewRecommendationUsecase(repos.Profiles, repos.Jobs, repos.Applications, scoring, engine, usecase.RecommendationOptions{
			Page:    usecase.PageConfig{DefaultLimit: cfg.Ranking.DefaultLimit, MaxLimit: cfg.Ranking.MaxLimit},
			PoolMax: cfg.Ranking.CandidatePoolMax,
			Logger:  logger.Named("recommendation"),
		}),
		Profile:   usecase.NewProfileUsecase(repos.Tx, repos.UserSkills, repos.Catalog, logger.Named("profile")),
		Jobs:      usecase.NewJobUsecase(repos.Tx, repos.Companies, repos.Catalog, logger.Named("jobs")),
		Companies: usecase.NewCompanyUsecase(repos.Tx, repos.Catalog),
	}

	logger.Info("container ready",
		zap.String("weights_version", weights.Version),
		zap.Int("workers", engine.Workers()),
		zap.Bool("score_cache", scoreCache != nil),
	)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    rc,
		JWT:      jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn),
		Weights:  weights,
		Engine:   engine,
		Repos:    repos,
		Usecases: ucs,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Warn("close cache", zap.Error(err))
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
