package v1

import (
	"careerhub/internal/delivery/http/handler"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/account"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Auth        *handler.AuthHandler
	Jobs        *handler.JobsHandler
	CompanyJobs *handler.CompanyJobsHandler
	Profiles    *handler.ProfileHandler
	Resume      *handler.ResumeHandler
	AuthMW      *middleware.AuthMiddleware
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	d.Auth.RegisterRoutes(r.Group("/auth"))
	d.Jobs.RegisterRoutes(r.Group("/jobs"))

	companyOnly := []any{d.AuthMW.Middleware(), d.AuthMW.RequireRole(account.RoleCompany)}
	studentOnly := []any{d.AuthMW.Middleware(), d.AuthMW.RequireRole(account.RoleStudent)}

	d.CompanyJobs.RegisterJobRoutes(r.Group("/jobs", companyOnly...))

	companies := r.Group("/companies", companyOnly...)
	d.CompanyJobs.RegisterCompanyRoutes(companies)
	d.Profiles.RegisterCompanyRoutes(companies)

	d.Profiles.RegisterStudentRoutes(r.Group("/students", studentOnly...))
	d.Resume.RegisterRoutes(r.Group("/resume", studentOnly...))
}
