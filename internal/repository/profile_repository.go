package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerhub/internal/database"
	"careerhub/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresStudentProfileRepository struct {
	db database.DB
}

func NewPostgresStudentProfileRepository(db database.DB) *PostgresStudentProfileRepository {
	return &PostgresStudentProfileRepository{db: db}
}

func (r *PostgresStudentProfileRepository) Get(ctx context.Context, accountID uuid.UUID) (profile.Student, error) {
	row := r.db.QueryRow(ctx,
		`SELECT account_id, full_name, headline, location, skills, updated_at
		 FROM student_profiles WHERE account_id = $1`, accountID)

	var p profile.Student
	err := row.Scan(&p.AccountID, &p.FullName, &p.Headline, &p.Location, &p.Skills, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Student{}, profile.ErrNotFound
		}
		return profile.Student{}, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

func (r *PostgresStudentProfileRepository) Upsert(ctx context.Context, p profile.Student) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO student_profiles (account_id, full_name, headline, location, skills, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (account_id) DO UPDATE
		 SET full_name = EXCLUDED.full_name, headline = EXCLUDED.headline,
		     location = EXCLUDED.location, skills = EXCLUDED.skills, updated_at = EXCLUDED.updated_at`,
		p.AccountID, p.FullName, p.Headline, p.Location, p.Skills, time.Now().UTC(),
	)
	return err
}

type PostgresCompanyProfileRepository struct {
	db database.DB
}

func NewPostgresCompanyProfileRepository(db database.DB) *PostgresCompanyProfileRepository {
	return &PostgresCompanyProfileRepository{db: db}
}

func (r *PostgresCompanyProfileRepository) Get(ctx context.Context, accountID uuid.UUID) (profile.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT account_id, name, website, description, location, updated_at
		 FROM company_profiles WHERE account_id = $1`, accountID)

	var p profile.Company
	err := row.Scan(&p.AccountID, &p.Name, &p.Website, &p.Description, &p.Location, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Company{}, profile.ErrNotFound
		}
		return profile.Company{}, err
	}
	return p, nil
}

func (r *PostgresCompanyProfileRepository) Upsert(ctx context.Context, p profile.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO company_profiles (account_id, name, website, description, location, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (account_id) DO UPDATE
		 SET name = EXCLUDED.name, website = EXCLUDED.website,
		     description = EXCLUDED.description, location = EXCLUDED.location, updated_at = EXCLUDED.updated_at`,
		p.AccountID, p.Name, p.Website, p.Description, p.Location, time.Now().UTC(),
	)
	return err
}
