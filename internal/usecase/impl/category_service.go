package impl

import (
	"context"

	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/repository"
	"borgo/internal/usecase"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service instance.
func NewCategoryService(categoryRepo repository.CategoryRepository) usecase.CategoryUsecase {
	return &categoryService{categoryRepo: categoryRepo}
}

// Categories returns the stored categories. When the store has none the
// built-in default set is served, so a fresh deployment is browsable before
// any manager has customized the taxonomy.
func (s *categoryService) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FetchAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load categories")
	}

	if len(categories) == 0 {
		return entity.DefaultCategories(), nil
	}

	return categories, nil
}
