package handler

import (
	"context"
	"errors"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return middleware.NewAppError(fiber.StatusGatewayTimeout, response.MessageGatewayTimeout, nil, err)
	case errors.Is(err, context.Canceled):
		return middleware.NewAppError(fiber.StatusRequestTimeout, response.MessageRequestTimeout, nil, err)
	case errors.Is(err, usecase.ErrSeekerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job seeker not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrLanguageNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Language not found", nil, err)
	case errors.Is(err, usecase.ErrRegionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Region not found", nil, err)
	case errors.Is(err, usecase.ErrSkillAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidRange):
		return middleware.NewAppError(fiber.StatusBadRequest, "Value out of range", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
