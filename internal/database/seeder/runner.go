package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"

	"skillmatrix/internal/domain/skill"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

// Run applies every seeder inside one store transaction, in order.
func (r Runner) Run(ctx context.Context, store skill.Store) error {
	if store == nil {
		return fmt.Errorf("nil store")
	}
	return store.WithinTx(ctx, func(tx skill.Store) error {
		for _, s := range r.Seeders {
			if s == nil {
				continue
			}
			if err := s.Run(ctx, tx); err != nil {
				return fmt.Errorf("seed %s: %w", s.Name(), err)
			}
			if r.Logger != nil {
				r.Logger.Printf("[Seeder] applied | name=%s", s.Name())
			}
		}
		return nil
	})
}

// createMissing calls create unless lookup finds the row already.
func createMissing(ctx context.Context, lookup func(context.Context) error, create func(context.Context) error) error {
	err := lookup(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, skill.ErrNotFound):
		return create(ctx)
	default:
		return err
	}
}
