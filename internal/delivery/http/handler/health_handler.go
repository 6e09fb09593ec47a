package handler

import (
	"context"
	"time"

	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports 503 when the database is unreachable. The cache is
// optional and only reported.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

type healthResponse struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	out := healthResponse{Database: "ok", Cache: "ok"}
	status := fiber.StatusOK

	if h.db == nil || h.db.Ping(ctx) != nil {
		out.Database = "unavailable"
		status = fiber.StatusServiceUnavailable
	}
	switch {
	case h.cache == nil:
		out.Cache = "disabled"
	case h.cache.Ping(ctx) != nil:
		out.Cache = "bypassed"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, response.MessageServiceUnavailable, out)
	}
	return response.OK(c, out)
}
