package usecase

import (
	"context"

	"borgo/internal/domain/entity"
)

// CategoryUsecase serves category reference data.
type CategoryUsecase interface {
	// Categories returns the stored custom categories, or the built-in default
	// set when none are stored.
	Categories(ctx context.Context) ([]*entity.Category, error)
}
