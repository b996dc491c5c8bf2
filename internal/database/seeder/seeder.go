// Package seeder fills a development database with demo accounts and
// postings. It never runs outside the development environment.
package seeder

import (
	"context"

	"careerhub/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
