package handler

import (
	"strconv"
	"strings"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func callerFrom(c fiber.Ctx) (middleware.Caller, error) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return middleware.Caller{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return caller, nil
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

// parseQueryInt returns def when the parameter is absent.
func parseQueryInt(c fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return v, nil
}

// parseQueryBool returns nil when the parameter is absent.
func parseQueryBool(c fiber.Ctx, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return &v, nil
}

func parsePage(c fiber.Ctx) (usecase.Page, error) {
	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return usecase.Page{}, err
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return usecase.Page{}, err
	}
	return usecase.Page{Limit: limit, Offset: offset}, nil
}

func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return nil
}
