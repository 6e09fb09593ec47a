package v1

import "github.com/gofiber/fiber/v3"

func registerCompanies(r fiber.Router, h Handlers) {
	if h.Company != nil {
		r.Put("/:company_id", h.Company.Save)
	}
}
