package v1

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Match          *handler.MatchHandler
	Recommendation *handler.RecommendationHandler
	Profile        *handler.ProfileHandler
	UserSkill      *handler.UserSkillHandler
	Job            *handler.JobHandler
	Company        *handler.CompanyHandler
}

func Register(r fiber.Router, auth *middleware.AuthMiddleware, h Handlers) {
	if r == nil {
		return
	}

	protected := r.Group("", auth.Middleware())

	registerJobs(protected.Group("/jobs"), h)
	registerMe(protected.Group("/me", middleware.RequireRole(seekerRoles...)), h)
	registerCompanies(protected.Group("/companies", middleware.RequireRole(companyRoles...)), h)
}
