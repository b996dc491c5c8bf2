package seeder

import (
	"context"

	"careerhub/internal/database"

	"github.com/google/uuid"
)

type DemoJobsSeeder struct{}

func (DemoJobsSeeder) Name() string { return "demo_jobs" }

func (DemoJobsSeeder) Run(ctx context.Context, db database.DB) error {
	postings := []struct {
		ID            uuid.UUID
		Title         string
		Department    string
		Type          string
		WorkplaceType string
		Location      string
		Skills        []string
		Description   string
	}{
		{
			ID:            uuid.MustParse("6f1f3f02-93c4-4f4e-9c61-1f6f2b1a0101"),
			Title:         "Backend Engineer",
			Department:    "Engineering",
			Type:          "full-time",
			WorkplaceType: "remote",
			Location:      "Jakarta",
			Skills:        []string{"Go", "PostgreSQL", "Redis"},
			Description:   "Design and run the services behind the job board.",
		},
		{
			ID:            uuid.MustParse("6f1f3f02-93c4-4f4e-9c61-1f6f2b1a0102"),
			Title:         "Frontend Engineer",
			Department:    "Engineering",
			Type:          "full-time",
			WorkplaceType: "hybrid",
			Location:      "Bandung",
			Skills:        []string{"TypeScript", "React"},
			Description:   "Build the student and employer facing web app.",
		},
		{
			ID:            uuid.MustParse("6f1f3f02-93c4-4f4e-9c61-1f6f2b1a0103"),
			Title:         "Data Analyst Intern",
			Department:    "Data",
			Type:          "internship",
			WorkplaceType: "on-site",
			Location:      "Jakarta",
			Skills:        []string{"SQL", "Python"},
			Description:   "Support hiring analytics with dashboards and reports.",
		},
	}

	for _, p := range postings {
		_, err := db.Exec(ctx,
			`INSERT INTO job_postings
			 (id, company_id, title, department, employment_type, workplace_type, location, skills, description, status, is_active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'published', TRUE)
			 ON CONFLICT (id) DO NOTHING`,
			p.ID, demoCompanyID, p.Title, p.Department, p.Type, p.WorkplaceType,
			p.Location, p.Skills, p.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
