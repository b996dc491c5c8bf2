package usecase

import (
	"context"
	"errors"
	"testing"

	"careerhub/internal/domain/job"
	"careerhub/internal/search"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	postings map[uuid.UUID]job.Posting

	searchScope    search.Scope
	searchCriteria search.Criteria
	searchResult   []job.Posting
	searchCalls    int

	err error
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{postings: map[uuid.UUID]job.Posting{}}
}

func (m *mockJobRepo) Create(_ context.Context, p job.Posting) error {
	if m.err != nil {
		return m.err
	}
	m.postings[p.ID] = p
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	p, ok := m.postings[id]
	if !ok {
		return job.Posting{}, job.ErrNotFound
	}
	return p, nil
}

func (m *mockJobRepo) Update(_ context.Context, p job.Posting) error {
	if m.err != nil {
		return m.err
	}
	existing, ok := m.postings[p.ID]
	if !ok {
		return job.ErrNotFound
	}
	p.CompanyID = existing.CompanyID
	p.Status = existing.Status
	p.IsActive = existing.IsActive
	p.CreatedAt = existing.CreatedAt
	m.postings[p.ID] = p
	return nil
}

func (m *mockJobRepo) SetStatus(_ context.Context, id uuid.UUID, status string, isActive bool) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.postings[id]
	if !ok {
		return job.ErrNotFound
	}
	p.Status = status
	p.IsActive = isActive
	m.postings[id] = p
	return nil
}

func (m *mockJobRepo) Search(_ context.Context, scope search.Scope, c search.Criteria, limit, offset int) ([]job.Posting, error) {
	m.searchCalls++
	m.searchScope = scope
	m.searchCriteria = c
	if m.err != nil {
		return nil, m.err
	}
	return m.searchResult, nil
}

type mockPublisher struct {
	events []uuid.UUID
}

func (m *mockPublisher) NotifyJobPublished(jobID uuid.UUID, _, _ string) {
	m.events = append(m.events, jobID)
}

func validJobInput() JobInput {
	return JobInput{
		Title:         "Backend Engineer",
		Department:    "Engineering",
		Type:          job.TypeFullTime,
		WorkplaceType: job.WorkplaceRemote,
		Location:      "Jakarta",
		Skills:        []string{"Go", " PostgreSQL ", ""},
		Description:   "Build services.",
	}
}

func TestJobUsecase_Create_Defaults(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, nil)

	companyID := uuid.New()
	p, err := uc.Create(context.Background(), companyID, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Status != job.StatusDraft {
		t.Fatalf("expected draft status, got %q", p.Status)
	}
	if !p.IsActive {
		t.Fatalf("expected new posting active")
	}
	if p.CompanyID != companyID {
		t.Fatalf("unexpected company id")
	}
	if len(p.Skills) != 2 {
		t.Fatalf("expected blank skills dropped, got %v", p.Skills)
	}
	if p.Department == nil || *p.Department != "Engineering" {
		t.Fatalf("unexpected department")
	}
}

func TestJobUsecase_Create_InvalidInput(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), nil)

	cases := []struct {
		name   string
		mutate func(*JobInput)
	}{
		{"empty title", func(in *JobInput) { in.Title = "  " }},
		{"bad type", func(in *JobInput) { in.Type = "gig" }},
		{"bad workplace", func(in *JobInput) { in.WorkplaceType = "moon" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validJobInput()
			tc.mutate(&in)
			if _, err := uc.Create(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestJobUsecase_Update_OtherCompanyForbidden(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, nil)

	owner := uuid.New()
	p, err := uc.Create(context.Background(), owner, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Update(context.Background(), uuid.New(), p.ID, validJobInput()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobUsecase_Update_PreservesLifecycle(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, nil)

	owner := uuid.New()
	p, _ := uc.Create(context.Background(), owner, validJobInput())
	if _, err := uc.ChangeStatus(context.Background(), owner, p.ID, job.StatusPublished, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	in := validJobInput()
	in.Title = "Senior Backend Engineer"
	updated, err := uc.Update(context.Background(), owner, p.ID, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Title != "Senior Backend Engineer" {
		t.Fatalf("title not updated")
	}
	if updated.Status != job.StatusPublished {
		t.Fatalf("update must not change status, got %q", updated.Status)
	}
}

func TestJobUsecase_Get_VisibilityRules(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, nil)

	owner := uuid.New()
	p, _ := uc.Create(context.Background(), owner, validJobInput())

	// Draft is invisible to the public but visible to its owner.
	if _, err := uc.Get(context.Background(), p.ID, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected draft hidden from public, got %v", err)
	}
	if _, err := uc.Get(context.Background(), p.ID, &owner); err != nil {
		t.Fatalf("owner should see own draft: %v", err)
	}
	other := uuid.New()
	if _, err := uc.Get(context.Background(), p.ID, &other); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected draft hidden from other company, got %v", err)
	}

	if _, err := uc.ChangeStatus(context.Background(), owner, p.ID, job.StatusPublished, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Get(context.Background(), p.ID, nil); err != nil {
		t.Fatalf("published posting should be public: %v", err)
	}
}

func TestJobUsecase_ChangeStatus_NotifiesOnPublishOnly(t *testing.T) {
	repo := newMockJobRepo()
	pub := &mockPublisher{}
	uc := NewJobUsecase(repo, pub)

	owner := uuid.New()
	p, _ := uc.Create(context.Background(), owner, validJobInput())

	if _, err := uc.ChangeStatus(context.Background(), owner, p.ID, job.StatusPublished, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(pub.events) != 1 || pub.events[0] != p.ID {
		t.Fatalf("expected one publish event, got %v", pub.events)
	}

	// Already visible; a repeat transition must not fan out again.
	if _, err := uc.ChangeStatus(context.Background(), owner, p.ID, job.StatusPublished, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected no duplicate events, got %d", len(pub.events))
	}

	if _, err := uc.ChangeStatus(context.Background(), owner, p.ID, job.StatusClosed, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("closing must not notify, got %d events", len(pub.events))
	}
}

func TestJobUsecase_ChangeStatus_InvalidStatus(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), nil)
	if _, err := uc.ChangeStatus(context.Background(), uuid.New(), uuid.New(), "archived", true); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_Deactivate_KeepsStatus(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, nil)

	owner := uuid.New()
	p, _ := uc.Create(context.Background(), owner, validJobInput())
	if _, err := uc.ChangeStatus(context.Background(), owner, p.ID, job.StatusPublished, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.Deactivate(context.Background(), owner, p.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	stored := repo.postings[p.ID]
	if stored.Status != job.StatusPublished {
		t.Fatalf("deactivate must keep status, got %q", stored.Status)
	}
	if stored.IsActive {
		t.Fatalf("expected posting inactive")
	}
	if _, err := uc.Get(context.Background(), p.ID, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive posting should be hidden from public, got %v", err)
	}
}

func TestJobUsecase_Create_RepoFailure(t *testing.T) {
	repo := newMockJobRepo()
	repo.err = errors.New("db down")
	uc := NewJobUsecase(repo, nil)

	if _, err := uc.Create(context.Background(), uuid.New(), validJobInput()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
