package usecase

import (
	"context"
	"errors"
	"strings"

	"careerhub/internal/domain/profile"

	"github.com/google/uuid"
)

type StudentProfileInput struct {
	FullName string
	Headline string
	Location string
	Skills   []string
}

type CompanyProfileInput struct {
	Name        string
	Website     string
	Description string
	Location    string
}

type ProfileUsecase interface {
	GetStudent(ctx context.Context, accountID uuid.UUID) (profile.Student, error)
	UpsertStudent(ctx context.Context, accountID uuid.UUID, in StudentProfileInput) (profile.Student, error)
	GetCompany(ctx context.Context, accountID uuid.UUID) (profile.Company, error)
	UpsertCompany(ctx context.Context, accountID uuid.UUID, in CompanyProfileInput) (profile.Company, error)
}

type Profiles struct {
	students  profile.StudentRepository
	companies profile.CompanyRepository
}

func NewProfileUsecase(students profile.StudentRepository, companies profile.CompanyRepository) *Profiles {
	return &Profiles{students: students, companies: companies}
}

func (u *Profiles) GetStudent(ctx context.Context, accountID uuid.UUID) (profile.Student, error) {
	p, err := u.students.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Student{}, ErrNotFound
		}
		return profile.Student{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) UpsertStudent(ctx context.Context, accountID uuid.UUID, in StudentProfileInput) (profile.Student, error) {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return profile.Student{}, ErrInvalidInput
	}

	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	p := profile.Student{
		AccountID: accountID,
		FullName:  name,
		Headline:  strings.TrimSpace(in.Headline),
		Location:  strings.TrimSpace(in.Location),
		Skills:    skills,
	}
	if err := u.students.Upsert(ctx, p); err != nil {
		return profile.Student{}, ErrInternal
	}
	return u.GetStudent(ctx, accountID)
}

func (u *Profiles) GetCompany(ctx context.Context, accountID uuid.UUID) (profile.Company, error) {
	p, err := u.companies.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Company{}, ErrNotFound
		}
		return profile.Company{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) UpsertCompany(ctx context.Context, accountID uuid.UUID, in CompanyProfileInput) (profile.Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return profile.Company{}, ErrInvalidInput
	}

	p := profile.Company{
		AccountID:   accountID,
		Name:        name,
		Website:     strings.TrimSpace(in.Website),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
	}
	if err := u.companies.Upsert(ctx, p); err != nil {
		return profile.Company{}, ErrInternal
	}
	return u.GetCompany(ctx, accountID)
}
