package v1

import (
	"talent-match/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// The /jobs routes mix roles, so each one carries its own gate ahead of the
// handler. The static /recommended path is registered before :job_id.
func registerJobs(r fiber.Router, h Handlers) {
	if h.Recommendation != nil {
		r.Get("/recommended", middleware.RequireRole(seekerRoles...), h.Recommendation.RecommendedJobs)
		r.Get("/:job_id/candidates", middleware.RequireRole(candidateRoles...), h.Recommendation.Candidates)
	}
	if h.Match != nil {
		r.Get("/:job_id/match", middleware.RequireRole(seekerRoles...), h.Match.GetMatch)
	}
	if h.Job != nil {
		r.Put("/:job_id", middleware.RequireRole(companyRoles...), h.Job.Save)
	}
}
