package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"
	v1 "talent-match/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(logger)
	accessMw := middleware.NewAccessLogMiddleware(logger.Named("http"))
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	var cachePinger handler.Pinger
	if c.Cache != nil && c.Cache.Enabled() {
		cachePinger = c.Cache
	}

	ucs := c.Usecases
	handlers := v1.Handlers{
		Match:          handler.NewMatchHandler(ucs.Matching),
		Recommendation: handler.NewRecommendationHandler(ucs.Recommendation, c.Config.Ranking.RequestTimeout),
		Profile:        handler.NewProfileHandler(ucs.Profile),
		UserSkill:      handler.NewUserSkillHandler(ucs.Profile),
		Job:            handler.NewJobHandler(ucs.Jobs),
		Company:        handler.NewCompanyHandler(ucs.Companies),
	}

	reg := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, cachePinger),
		middleware.NewAuthMiddleware(c.JWT),
		handlers,
	)
	reg.Register(app)
}

func (a *App) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return a.Fiber.ShutdownWithContext(ctx)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
