package impl

import (
	"context"
	"testing"

	"borgo/internal/domain/entity"
	mockRepo "borgo/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Categories_ReturnsStored(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	svc := NewCategoryService(categoryRepo)

	ctx := context.Background()
	stored := []*entity.Category{
		{ID: "enoteca", Name: "Enoteche", Color: "#722F37", Icon: "wine"},
	}

	categoryRepo.EXPECT().FetchAll(ctx).Return(stored, nil)

	got, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "enoteca", got[0].ID)
}

func TestCategoryService_Categories_FallsBackToDefaults(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	svc := NewCategoryService(categoryRepo)

	ctx := context.Background()

	categoryRepo.EXPECT().FetchAll(ctx).Return(nil, nil)

	got, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCategories(), got)
}

func TestCategoryService_Categories_RepositoryError(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	svc := NewCategoryService(categoryRepo)

	ctx := context.Background()

	categoryRepo.EXPECT().FetchAll(ctx).Return(nil, errors.New("connection refused"))

	_, err := svc.Categories(ctx)
	assert.Error(t, err)
}
