package search

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Builder accumulates AND-combined SQL conditions with positional args.
type Builder struct {
	conds []string
	args  []any
}

// Bind registers an argument and returns its placeholder ($1, $2, ...).
func (b *Builder) Bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// And appends one conjunct.
func (b *Builder) And(cond string) {
	if cond == "" {
		return
	}
	b.conds = append(b.conds, cond)
}

func (b *Builder) Conds() []string {
	return b.conds
}

func (b *Builder) Args() []any {
	return b.args
}

// Scope is a caller-supplied constraint ANDed in before any criteria so the
// optional parameters can never widen it.
type Scope func(b *Builder)

// ScopePublished restricts to postings students may see.
func ScopePublished() Scope {
	return func(b *Builder) {
		b.And("status = 'published' AND is_active")
	}
}

// ScopeCompany restricts to a single company's postings.
func ScopeCompany(companyID uuid.UUID) Scope {
	return func(b *Builder) {
		b.And("company_id = " + b.Bind(companyID))
	}
}

// Build maps a Criteria to a WHERE clause, its args and an ORDER BY
// expression. It is a pure function of its inputs; "now" anchors the
// relative time window.
func Build(scope Scope, c Criteria, now time.Time) (where string, args []any, orderBy string) {
	b := &Builder{}

	if scope != nil {
		scope(b)
	}

	if c.Query != "" {
		p := b.Bind(containsPattern(c.Query))
		b.And("(title ILIKE " + p + " OR COALESCE(department, '') ILIKE " + p + " OR location ILIKE " + p + ")")
	}
	if c.Title != "" {
		b.And("title ILIKE " + b.Bind(containsPattern(c.Title)))
	}
	if c.Department != "" {
		b.And("COALESCE(department, '') ILIKE " + b.Bind(containsPattern(c.Department)))
	}
	if c.Location != "" {
		b.And("location ILIKE " + b.Bind(containsPattern(c.Location)))
	}

	if c.Type != "" {
		b.And("employment_type = " + b.Bind(c.Type))
	}
	if c.WorkplaceType != "" {
		b.And("workplace_type = " + b.Bind(c.WorkplaceType))
	}
	if c.Status != "" {
		b.And("status = " + b.Bind(c.Status))
	}

	if len(c.Skills) > 0 {
		b.And("skills @> " + b.Bind(c.Skills))
	}

	// Two mutually exclusive date modes: an explicit from/to range wins over
	// the relative window whenever either bound is present.
	switch {
	case c.From != nil || c.To != nil:
		if c.From != nil {
			b.And("created_at >= " + b.Bind(c.From.UTC()))
		}
		if c.To != nil {
			b.And("created_at <= " + b.Bind(c.To.UTC()))
		}
	case c.WindowDays > 0:
		start := now.UTC().AddDate(0, 0, -c.WindowDays)
		b.And("created_at >= " + b.Bind(start))
		b.And("created_at <= " + b.Bind(now.UTC()))
	}

	where = strings.Join(b.conds, " AND ")
	return where, b.args, OrderBy(c.Sort)
}

var sortColumns = map[string]string{
	"createdAt":     "created_at",
	"title":         "title",
	"department":    "department",
	"location":      "location",
	"type":          "employment_type",
	"workplaceType": "workplace_type",
}

// OrderBy resolves a sort key ("field" or "-field") against the whitelist.
// Unknown keys fall back to the default, newest first.
func OrderBy(sort string) string {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		sort = DefaultSort
	}

	desc := strings.HasPrefix(sort, "-")
	key := strings.TrimPrefix(sort, "-")

	col, ok := sortColumns[key]
	if !ok {
		return "created_at DESC"
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}

// containsPattern builds a case-insensitive substring match pattern,
// escaping LIKE metacharacters in the user's input.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
