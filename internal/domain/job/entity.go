package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job posting not found")

// Employment types.
const (
	TypeFullTime   = "full-time"
	TypePartTime   = "part-time"
	TypeContract   = "contract"
	TypeFreelance  = "freelance"
	TypeInternship = "internship"
)

// Workplace types.
const (
	WorkplaceOnSite = "on-site"
	WorkplaceHybrid = "hybrid"
	WorkplaceRemote = "remote"
)

// Posting lifecycle. A posting is visible to students only while it is
// published and active; "deletion" flips these flags instead of removing
// the row.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusClosed    = "closed"
)

type Posting struct {
	ID            uuid.UUID `json:"id"`
	CompanyID     uuid.UUID `json:"company_id"`
	Title         string    `json:"title"`
	Department    *string   `json:"department,omitempty"`
	Type          string    `json:"type"`
	WorkplaceType string    `json:"workplace_type"`
	Location      string    `json:"location"`
	Skills        []string  `json:"skills"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ValidType(t string) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeFreelance, TypeInternship:
		return true
	}
	return false
}

func ValidWorkplaceType(t string) bool {
	switch t {
	case WorkplaceOnSite, WorkplaceHybrid, WorkplaceRemote:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusClosed
}
