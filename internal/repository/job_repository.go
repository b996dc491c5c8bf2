package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"careerhub/internal/database"
	"careerhub/internal/domain/job"
	"careerhub/internal/search"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobRepository interface {
	Create(ctx context.Context, p job.Posting) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	Update(ctx context.Context, p job.Posting) error
	SetStatus(ctx context.Context, id uuid.UUID, status string, isActive bool) error
	Search(ctx context.Context, scope search.Scope, criteria search.Criteria, limit, offset int) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db  database.DB
	now func() time.Time
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db, now: time.Now}
}

const jobColumns = `id, company_id, title, department, employment_type, workplace_type,
	COALESCE(location, ''), skills, COALESCE(description, ''), status, is_active, created_at, updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_postings
		 (id, company_id, title, department, employment_type, workplace_type, location, skills, description, status, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`,
		p.ID, p.CompanyID, p.Title, p.Department, p.Type, p.WorkplaceType,
		p.Location, p.Skills, p.Description, p.Status, p.IsActive, p.CreatedAt,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id)
	return scanPosting(row)
}

func (r *PostgresJobRepository) Update(ctx context.Context, p job.Posting) error {
	n, err := r.db.Exec(ctx,
		`UPDATE job_postings
		 SET title = $2, department = $3, employment_type = $4, workplace_type = $5,
		     location = $6, skills = $7, description = $8, updated_at = $9
		 WHERE id = $1`,
		p.ID, p.Title, p.Department, p.Type, p.WorkplaceType,
		p.Location, p.Skills, p.Description, r.now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) SetStatus(ctx context.Context, id uuid.UUID, status string, isActive bool) error {
	n, err := r.db.Exec(ctx,
		`UPDATE job_postings SET status = $2, is_active = $3, updated_at = $4 WHERE id = $1`,
		id, status, isActive, r.now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Search(ctx context.Context, scope search.Scope, criteria search.Criteria, limit, offset int) ([]job.Posting, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	where, args, orderBy := search.Build(scope, criteria, r.now())

	q := `SELECT ` + jobColumns + ` FROM job_postings`
	if where != "" {
		q += ` WHERE ` + where
	}
	q += ` ORDER BY ` + orderBy
	q += ` LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPosting(row scanner) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Title, &p.Department, &p.Type, &p.WorkplaceType,
		&p.Location, &p.Skills, &p.Description, &p.Status, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, job.ErrNotFound
		}
		return job.Posting{}, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}
