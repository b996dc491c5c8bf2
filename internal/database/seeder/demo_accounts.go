package seeder

import (
	"context"

	"careerhub/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	demoCompanyID = uuid.MustParse("6f1f3f02-93c4-4f4e-9c61-1f6f2b1a0001")
	demoStudentID = uuid.MustParse("6f1f3f02-93c4-4f4e-9c61-1f6f2b1a0002")
)

const demoPassword = "password123"

type DemoAccountsSeeder struct{}

func (DemoAccountsSeeder) Name() string { return "demo_accounts" }

func (DemoAccountsSeeder) Run(ctx context.Context, db database.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	accounts := []struct {
		ID    uuid.UUID
		Email string
		Role  string
	}{
		{ID: demoCompanyID, Email: "demo-company@careerhub.dev", Role: "company"},
		{ID: demoStudentID, Email: "demo-student@careerhub.dev", Role: "student"},
	}

	for _, a := range accounts {
		_, err := db.Exec(ctx,
			`INSERT INTO accounts (id, email, password_hash, role, email_verified)
			 VALUES ($1, $2, $3, $4, TRUE)
			 ON CONFLICT (email) DO NOTHING`,
			a.ID, a.Email, string(hash), a.Role,
		)
		if err != nil {
			return err
		}
	}

	_, err = db.Exec(ctx,
		`INSERT INTO company_profiles (account_id, name, website, description, location)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (account_id) DO NOTHING`,
		demoCompanyID, "Acme Corp", "https://acme.example.com", "Demo employer account.", "Jakarta",
	)
	return err
}
