package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date parameter")

const DefaultSort = "-createdAt"

// Criteria carries the optional job-search parameters. A zero field means
// "no constraint"; Build never adds a condition for an absent field.
type Criteria struct {
	Query         string
	Title         string
	Department    string
	Type          string
	WorkplaceType string
	Status        string
	Location      string
	Skills        []string
	From          *time.Time
	To            *time.Time
	WindowDays    int
	Sort          string
}

// ParseCriteria builds Criteria from raw query parameters. Malformed from/to
// dates are rejected; a malformed or non-positive time window is ignored.
func ParseCriteria(params map[string]string) (Criteria, error) {
	get := func(key string) string {
		return strings.TrimSpace(params[key])
	}

	c := Criteria{
		Query:         get("q"),
		Title:         get("title"),
		Department:    get("department"),
		Type:          get("type"),
		WorkplaceType: get("workplaceType"),
		Status:        get("status"),
		Location:      get("location"),
		Skills:        SplitSkills(get("skills")),
		WindowDays:    parseWindowDays(get("time")),
		Sort:          get("sort"),
	}

	from, err := parseDate(get("from"))
	if err != nil {
		return Criteria{}, fmt.Errorf("%w: from", ErrInvalidDate)
	}
	to, err := parseDate(get("to"))
	if err != nil {
		return Criteria{}, fmt.Errorf("%w: to", ErrInvalidDate)
	}
	c.From = from
	c.To = to

	return c, nil
}

// SplitSkills splits a comma-separated skill list, trimming entries and
// dropping empties.
func SplitSkills(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, ErrInvalidDate
}

// parseWindowDays extracts the leading digits of a relative window such as
// "30d". Non-numeric or non-positive input yields 0 (no constraint).
func parseWindowDays(s string) int {
	if s == "" {
		return 0
	}
	digits := strings.Builder{}
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		digits.WriteRune(r)
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
