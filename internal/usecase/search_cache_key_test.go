package usecase

import (
	"strings"
	"testing"
	"time"

	"careerhub/internal/search"
)

func TestJobsSearchCacheKey_NormalizesEquivalentSearches(t *testing.T) {
	a := JobsSearchCacheKey(search.Criteria{
		Query:    "  Backend   Engineer ",
		Location: "JAKARTA",
		Skills:   []string{" Go ", "PostgreSQL"},
	}, 20, 0)
	b := JobsSearchCacheKey(search.Criteria{
		Query:    "backend engineer",
		Location: "jakarta",
		Skills:   []string{"go", "postgresql"},
	}, 20, 0)

	if a != b {
		t.Fatalf("equivalent searches must share a key: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "jobs:search:") {
		t.Fatalf("unexpected key prefix: %s", a)
	}
}

func TestJobsSearchCacheKey_DistinguishesCriteria(t *testing.T) {
	base := search.Criteria{Location: "jakarta"}

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []search.Criteria{
		{Location: "bandung"},
		{Location: "jakarta", Skills: []string{"go"}},
		{Location: "jakarta", WindowDays: 30},
		{Location: "jakarta", From: &from},
		{Location: "jakarta", Sort: "title"},
	}

	baseKey := JobsSearchCacheKey(base, 20, 0)
	for i, c := range cases {
		if JobsSearchCacheKey(c, 20, 0) == baseKey {
			t.Fatalf("case %d produced the same key as the base criteria", i)
		}
	}
	if JobsSearchCacheKey(base, 20, 20) == baseKey {
		t.Fatalf("offset must be part of the key")
	}
}

func TestJobsSearchLockKey(t *testing.T) {
	key := JobsSearchCacheKey(search.Criteria{}, 20, 0)
	lock := JobsSearchLockKey(key)
	if !strings.HasPrefix(lock, "jobs:lock:") {
		t.Fatalf("unexpected lock key: %s", lock)
	}
	if strings.TrimPrefix(lock, "jobs:lock:") != strings.TrimPrefix(key, "jobs:search:") {
		t.Fatalf("lock key must mirror the search key hash")
	}
}
