package handler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func TestMapUsecaseError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{context.DeadlineExceeded, fiber.StatusGatewayTimeout},
		{fmt.Errorf("rank: %w", context.DeadlineExceeded), fiber.StatusGatewayTimeout},
		{context.Canceled, fiber.StatusRequestTimeout},
		{usecase.ErrSeekerNotFound, fiber.StatusNotFound},
		{usecase.ErrJobNotFound, fiber.StatusNotFound},
		{usecase.ErrCompanyNotFound, fiber.StatusNotFound},
		{usecase.ErrSkillNotFound, fiber.StatusNotFound},
		{usecase.ErrLanguageNotFound, fiber.StatusNotFound},
		{usecase.ErrRegionNotFound, fiber.StatusNotFound},
		{usecase.ErrSkillAlreadyExists, fiber.StatusConflict},
		{fmt.Errorf("%w: proficiency 7", usecase.ErrInvalidRange), fiber.StatusBadRequest},
		{usecase.ErrInvalidInput, fiber.StatusBadRequest},
		{usecase.ErrUnauthorized, fiber.StatusUnauthorized},
		{usecase.ErrForbidden, fiber.StatusForbidden},
		{usecase.ErrDataAccess, fiber.StatusInternalServerError},
		{errors.New("unexpected"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		err := mapUsecaseError(tc.err)
		var appErr *middleware.AppError
		if !errors.As(err, &appErr) {
			t.Fatalf("%v: expected *AppError, got %T", tc.err, err)
		}
		if appErr.StatusCode != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, appErr.StatusCode)
		}
		if !errors.Is(err, tc.err) {
			t.Fatalf("%v: cause lost", tc.err)
		}
	}

	if mapUsecaseError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}
