package usecase

import (
	"context"
	"log"
	"time"

	"careerhub/internal/domain/job"
	"careerhub/internal/repository"
	"careerhub/internal/search"

	"github.com/google/uuid"
)

const (
	searchCacheTTL = 60 * time.Second
	searchLockTTL  = 30 * time.Second
)

type JobSearchUsecase interface {
	SearchPublished(ctx context.Context, criteria search.Criteria, limit, offset int) ([]job.Posting, error)
	SearchCompany(ctx context.Context, companyID uuid.UUID, criteria search.Criteria, limit, offset int) ([]job.Posting, error)
}

type JobSearch struct {
	jobs   repository.JobRepository
	cache  SearchCache
	logger *log.Logger
}

func NewJobSearchUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *JobSearch {
	return &JobSearch{jobs: jobs, cache: cache, logger: logger}
}

// SearchPublished serves the public listing. Results are cached briefly; a
// short SetNX lock keeps concurrent identical misses from stampeding the
// database, with a single wait-and-recheck for the losers.
func (u *JobSearch) SearchPublished(ctx context.Context, criteria search.Criteria, limit, offset int) ([]job.Posting, error) {
	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, err
	}

	// The published scope already pins status; a caller-supplied status
	// would only shrink the result to nothing.
	criteria.Status = ""

	cacheKey := JobsSearchCacheKey(criteria, limit, offset)
	lockKey := JobsSearchLockKey(cacheKey)

	if u.cache != nil {
		var cached []job.Posting
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", searchLockTTL)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitter)
			var cached []job.Posting
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				return cached, nil
			}
		}
	}

	out, err := u.jobs.Search(ctx, search.ScopePublished(), criteria, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, searchCacheTTL)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

// SearchCompany lists a company's own postings in any status. These views are
// low-volume and must reflect writes immediately, so they bypass the cache.
func (u *JobSearch) SearchCompany(ctx context.Context, companyID uuid.UUID, criteria search.Criteria, limit, offset int) ([]job.Posting, error) {
	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, err
	}

	out, err := u.jobs.Search(ctx, search.ScopeCompany(companyID), criteria, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func normalizePage(limit, offset int) (int, int, error) {
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 100 {
		return 0, 0, ErrInvalidInput
	}
	if offset < 0 {
		return 0, 0, ErrInvalidInput
	}
	return limit, offset, nil
}
