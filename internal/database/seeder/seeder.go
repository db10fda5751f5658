package seeder

import (
	"context"

	"skillmatrix/internal/domain/skill"
)

// Seeder writes a fixed data set. Run must be idempotent: rows that already
// exist are left untouched.
type Seeder interface {
	Name() string
	Run(ctx context.Context, store skill.Store) error
}
