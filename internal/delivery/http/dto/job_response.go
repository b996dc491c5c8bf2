package dto

import (
	"time"

	"careerhub/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID            uuid.UUID `json:"id"`
	CompanyID     uuid.UUID `json:"company_id"`
	Title         string    `json:"title"`
	Department    string    `json:"department,omitempty"`
	Type          string    `json:"type"`
	WorkplaceType string    `json:"workplace_type"`
	Location      string    `json:"location"`
	Skills        []string  `json:"skills"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

func NewJobResponse(p job.Posting) JobResponse {
	r := JobResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		Title:         p.Title,
		Type:          p.Type,
		WorkplaceType: p.WorkplaceType,
		Location:      p.Location,
		Skills:        p.Skills,
		Description:   p.Description,
		Status:        p.Status,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.Department != nil {
		r.Department = *p.Department
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	return r
}

func NewJobListResponse(items []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewJobResponse(p))
	}
	return out
}
