package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

type Student struct {
	AccountID uuid.UUID `json:"account_id"`
	FullName  string    `json:"full_name"`
	Headline  string    `json:"headline"`
	Location  string    `json:"location"`
	Skills    []string  `json:"skills"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Company struct {
	AccountID   uuid.UUID `json:"account_id"`
	Name        string    `json:"name"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StudentRepository interface {
	Get(ctx context.Context, accountID uuid.UUID) (Student, error)
	Upsert(ctx context.Context, p Student) error
}

type CompanyRepository interface {
	Get(ctx context.Context, accountID uuid.UUID) (Company, error)
	Upsert(ctx context.Context, p Company) error
}
