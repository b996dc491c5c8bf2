package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"careerhub/internal/domain/job"
	"careerhub/internal/search"

	"github.com/google/uuid"
)

type mockSearchCache struct {
	entries map[string][]byte
	locks   map[string]string

	getErr error
	setErr error
}

func newMockSearchCache() *mockSearchCache {
	return &mockSearchCache{entries: map[string][]byte{}, locks: map[string]string{}}
}

func (m *mockSearchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockSearchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = b
	return nil
}

func (m *mockSearchCache) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	delete(m.locks, key)
	return nil
}

func (m *mockSearchCache) SetIfNotExists(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	if _, ok := m.locks[key]; ok {
		return false, nil
	}
	m.locks[key] = value
	return true, nil
}

func publishedPosting() job.Posting {
	return job.Posting{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		Title:     "Backend Engineer",
		Status:    job.StatusPublished,
		IsActive:  true,
		Skills:    []string{"Go"},
	}
}

func TestJobSearchUsecase_SearchPublished_InvalidPage(t *testing.T) {
	uc := NewJobSearchUsecase(newMockJobRepo(), nil, nil)

	if _, err := uc.SearchPublished(context.Background(), search.Criteria{}, -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative limit, got %v", err)
	}
	if _, err := uc.SearchPublished(context.Background(), search.Criteria{}, 101, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized limit, got %v", err)
	}
	if _, err := uc.SearchPublished(context.Background(), search.Criteria{}, 20, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative offset, got %v", err)
	}
}

func TestJobSearchUsecase_SearchPublished_UsesPublishedScope(t *testing.T) {
	repo := newMockJobRepo()
	repo.searchResult = []job.Posting{publishedPosting()}
	uc := NewJobSearchUsecase(repo, nil, nil)

	out, err := uc.SearchPublished(context.Background(), search.Criteria{Status: job.StatusDraft}, 0, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}

	where, _, _ := search.Build(repo.searchScope, search.Criteria{}, time.Now())
	if !strings.Contains(where, "status = 'published'") {
		t.Fatalf("expected published scope, got %q", where)
	}
	if repo.searchCriteria.Status != "" {
		t.Fatalf("caller-supplied status must be dropped for public search, got %q", repo.searchCriteria.Status)
	}
}

func TestJobSearchUsecase_SearchPublished_CacheHitSkipsRepo(t *testing.T) {
	repo := newMockJobRepo()
	cache := newMockSearchCache()
	uc := NewJobSearchUsecase(repo, cache, nil)

	want := []job.Posting{publishedPosting()}
	key := JobsSearchCacheKey(search.Criteria{Location: "jakarta"}, 20, 0)
	if err := cache.SetJSON(context.Background(), key, want, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	out, err := uc.SearchPublished(context.Background(), search.Criteria{Location: "Jakarta "}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.searchCalls != 0 {
		t.Fatalf("expected repo untouched on cache hit, got %d calls", repo.searchCalls)
	}
	if len(out) != 1 || out[0].ID != want[0].ID {
		t.Fatalf("unexpected cached result")
	}
}

func TestJobSearchUsecase_SearchPublished_MissPopulatesCacheAndReleasesLock(t *testing.T) {
	repo := newMockJobRepo()
	repo.searchResult = []job.Posting{publishedPosting()}
	cache := newMockSearchCache()
	uc := NewJobSearchUsecase(repo, cache, nil)

	criteria := search.Criteria{Skills: []string{"Go"}}
	if _, err := uc.SearchPublished(context.Background(), criteria, 20, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.searchCalls != 1 {
		t.Fatalf("expected one repo call, got %d", repo.searchCalls)
	}

	key := JobsSearchCacheKey(criteria, 20, 0)
	if _, ok := cache.entries[key]; !ok {
		t.Fatalf("expected cache populated under %s", key)
	}
	if _, ok := cache.locks[JobsSearchLockKey(key)]; ok {
		t.Fatalf("expected lock released")
	}

	// Second identical search is served from cache.
	if _, err := uc.SearchPublished(context.Background(), criteria, 20, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.searchCalls != 1 {
		t.Fatalf("expected cache to serve repeat search, got %d repo calls", repo.searchCalls)
	}
}

func TestJobSearchUsecase_SearchPublished_CacheFailureFallsThrough(t *testing.T) {
	repo := newMockJobRepo()
	repo.searchResult = []job.Posting{publishedPosting()}
	cache := newMockSearchCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	uc := NewJobSearchUsecase(repo, cache, nil)

	out, err := uc.SearchPublished(context.Background(), search.Criteria{}, 20, 0)
	if err != nil {
		t.Fatalf("cache outage must not fail search: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected repo result, got %d items", len(out))
	}
}

func TestJobSearchUsecase_SearchCompany_ScopesToCompanyAndBypassesCache(t *testing.T) {
	repo := newMockJobRepo()
	repo.searchResult = []job.Posting{}
	cache := newMockSearchCache()
	uc := NewJobSearchUsecase(repo, cache, nil)

	companyID := uuid.New()
	if _, err := uc.SearchCompany(context.Background(), companyID, search.Criteria{Status: job.StatusDraft}, 20, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	where, args, _ := search.Build(repo.searchScope, search.Criteria{}, time.Now())
	if !strings.Contains(where, "company_id") {
		t.Fatalf("expected company scope, got %q", where)
	}
	if len(args) != 1 || args[0] != companyID {
		t.Fatalf("expected company id bound, got %v", args)
	}
	if repo.searchCriteria.Status != job.StatusDraft {
		t.Fatalf("company search must keep the status filter")
	}
	if len(cache.entries) != 0 {
		t.Fatalf("company search must not populate the cache")
	}
}

func TestJobSearchUsecase_SearchPublished_RepoFailure(t *testing.T) {
	repo := newMockJobRepo()
	repo.err = errors.New("db down")
	uc := NewJobSearchUsecase(repo, nil, nil)

	if _, err := uc.SearchPublished(context.Background(), search.Criteria{}, 20, 0); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
