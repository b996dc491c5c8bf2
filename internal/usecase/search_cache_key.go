package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"careerhub/internal/search"
)

type jobSearchCacheKeyInput struct {
	Query         string   `json:"query"`
	Title         string   `json:"title"`
	Department    string   `json:"department"`
	Type          string   `json:"type"`
	WorkplaceType string   `json:"workplace_type"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	WindowDays    int      `json:"window_days"`
	Sort          string   `json:"sort"`
	Limit         int      `json:"limit"`
	Offset        int      `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsSearchCacheKey derives a stable key from the normalized criteria so that
// equivalent searches (case, whitespace) share a cache entry.
func JobsSearchCacheKey(c search.Criteria, limit, offset int) string {
	skills := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	in := jobSearchCacheKeyInput{
		Query:         normalizeSearchValue(c.Query),
		Title:         normalizeSearchValue(c.Title),
		Department:    normalizeSearchValue(c.Department),
		Type:          normalizeSearchValue(c.Type),
		WorkplaceType: normalizeSearchValue(c.WorkplaceType),
		Location:      normalizeSearchValue(c.Location),
		Skills:        skills,
		WindowDays:    c.WindowDays,
		Sort:          normalizeSearchValue(c.Sort),
		Limit:         limit,
		Offset:        offset,
	}
	if c.From != nil {
		in.From = c.From.UTC().Format(time.RFC3339)
	}
	if c.To != nil {
		in.To = c.To.UTC().Format(time.RFC3339)
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return "jobs:search:" + h
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "jobs:search:") {
		return "jobs:lock:" + strings.TrimPrefix(searchKey, "jobs:search:")
	}
	return "jobs:lock:" + searchKey
}
