package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"careerhub/internal/domain/job"
	"careerhub/internal/repository"

	"github.com/google/uuid"
)

type JobInput struct {
	Title         string
	Department    string
	Type          string
	WorkplaceType string
	Location      string
	Skills        []string
	Description   string
}

// Publisher receives publish events; the websocket hub implements it.
type Publisher interface {
	NotifyJobPublished(jobID uuid.UUID, title, location string)
}

type JobUsecase interface {
	Create(ctx context.Context, companyID uuid.UUID, in JobInput) (job.Posting, error)
	Update(ctx context.Context, companyID, jobID uuid.UUID, in JobInput) (job.Posting, error)
	Get(ctx context.Context, jobID uuid.UUID, viewerCompanyID *uuid.UUID) (job.Posting, error)
	ChangeStatus(ctx context.Context, companyID, jobID uuid.UUID, status string, isActive bool) (job.Posting, error)
	Deactivate(ctx context.Context, companyID, jobID uuid.UUID) error
}

type Jobs struct {
	repo      repository.JobRepository
	publisher Publisher
	now       func() time.Time
}

func NewJobUsecase(repo repository.JobRepository, publisher Publisher) *Jobs {
	return &Jobs{repo: repo, publisher: publisher, now: time.Now}
}

func (u *Jobs) Create(ctx context.Context, companyID uuid.UUID, in JobInput) (job.Posting, error) {
	p, err := u.validate(companyID, in)
	if err != nil {
		return job.Posting{}, err
	}

	p.ID = uuid.New()
	p.Status = job.StatusDraft
	p.IsActive = true
	p.CreatedAt = u.now().UTC()
	p.UpdatedAt = p.CreatedAt

	if err := u.repo.Create(ctx, p); err != nil {
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (u *Jobs) Update(ctx context.Context, companyID, jobID uuid.UUID, in JobInput) (job.Posting, error) {
	existing, err := u.ownedPosting(ctx, companyID, jobID)
	if err != nil {
		return job.Posting{}, err
	}

	p, err := u.validate(companyID, in)
	if err != nil {
		return job.Posting{}, err
	}

	p.ID = existing.ID
	p.Status = existing.Status
	p.IsActive = existing.IsActive
	p.CreatedAt = existing.CreatedAt

	if err := u.repo.Update(ctx, p); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, ErrInternal
	}

	return u.get(ctx, jobID)
}

// Get returns a posting when it is publicly visible, or regardless of
// visibility when the viewer owns it.
func (u *Jobs) Get(ctx context.Context, jobID uuid.UUID, viewerCompanyID *uuid.UUID) (job.Posting, error) {
	p, err := u.get(ctx, jobID)
	if err != nil {
		return job.Posting{}, err
	}

	visible := p.Status == job.StatusPublished && p.IsActive
	owned := viewerCompanyID != nil && *viewerCompanyID == p.CompanyID
	if !visible && !owned {
		return job.Posting{}, ErrNotFound
	}
	return p, nil
}

// ChangeStatus drives the posting lifecycle. Publishing an unpublished
// posting fans a notification out to connected clients.
func (u *Jobs) ChangeStatus(ctx context.Context, companyID, jobID uuid.UUID, status string, isActive bool) (job.Posting, error) {
	if !job.ValidStatus(status) {
		return job.Posting{}, ErrInvalidInput
	}

	existing, err := u.ownedPosting(ctx, companyID, jobID)
	if err != nil {
		return job.Posting{}, err
	}

	if err := u.repo.SetStatus(ctx, jobID, status, isActive); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, ErrInternal
	}

	wasVisible := existing.Status == job.StatusPublished && existing.IsActive
	nowVisible := status == job.StatusPublished && isActive
	if !wasVisible && nowVisible && u.publisher != nil {
		u.publisher.NotifyJobPublished(existing.ID, existing.Title, existing.Location)
	}

	return u.get(ctx, jobID)
}

// Deactivate is the logical delete: the row stays, students stop seeing it.
func (u *Jobs) Deactivate(ctx context.Context, companyID, jobID uuid.UUID) error {
	existing, err := u.ownedPosting(ctx, companyID, jobID)
	if err != nil {
		return err
	}

	if err := u.repo.SetStatus(ctx, jobID, existing.Status, false); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Jobs) get(ctx context.Context, jobID uuid.UUID) (job.Posting, error) {
	p, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (u *Jobs) ownedPosting(ctx context.Context, companyID, jobID uuid.UUID) (job.Posting, error) {
	p, err := u.get(ctx, jobID)
	if err != nil {
		return job.Posting{}, err
	}
	if p.CompanyID != companyID {
		return job.Posting{}, ErrForbidden
	}
	return p, nil
}

func (u *Jobs) validate(companyID uuid.UUID, in JobInput) (job.Posting, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Posting{}, ErrInvalidInput
	}
	if !job.ValidType(in.Type) {
		return job.Posting{}, ErrInvalidInput
	}
	if !job.ValidWorkplaceType(in.WorkplaceType) {
		return job.Posting{}, ErrInvalidInput
	}

	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	p := job.Posting{
		CompanyID:     companyID,
		Title:         title,
		Type:          in.Type,
		WorkplaceType: in.WorkplaceType,
		Location:      strings.TrimSpace(in.Location),
		Skills:        skills,
		Description:   strings.TrimSpace(in.Description),
		UpdatedAt:     u.now().UTC(),
	}

	if dep := strings.TrimSpace(in.Department); dep != "" {
		p.Department = &dep
	}

	return p, nil
}
