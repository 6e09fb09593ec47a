package v1

import "github.com/gofiber/fiber/v3"

func registerMe(r fiber.Router, h Handlers) {
	if h.Profile != nil {
		r.Put("/profile", h.Profile.SaveProfile)
		r.Put("/preferences", h.Profile.SavePreferences)
	}
	if h.UserSkill != nil {
		r.Get("/skills", h.UserSkill.List)
		r.Post("/skills", h.UserSkill.Add)
		r.Put("/skills/:skill_id", h.UserSkill.Update)
		r.Delete("/skills/:skill_id", h.UserSkill.Delete)
	}
}
