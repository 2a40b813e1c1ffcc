package repository

import (
	"context"

	"borgo/internal/domain/entity"
)

// CategoryRepository defines the interface for category reference data.
type CategoryRepository interface {
	// FetchAll retrieves the stored custom categories. An empty result is not
	// an error; callers fall back to the built-in default set.
	FetchAll(ctx context.Context) ([]*entity.Category, error)

	// Create persists a custom category.
	Create(ctx context.Context, category *entity.Category) error
}
