package routes

import (
	"talent-match/internal/delivery/http/middleware"
	v1 "talent-match/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, auth *middleware.AuthMiddleware, handlers v1.Handlers) {
	if r == nil || auth == nil {
		return
	}

	v1.Register(r, auth, handlers)
}
