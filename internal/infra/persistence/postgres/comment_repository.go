package postgres

import (
	"context"

	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/repository"
	"borgo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// FindByListing retrieves all comments for a listing, newest first.
func (repo *commentRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find comments by listing")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingNotFound.WrapMessage("comment references missing listing or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// CountByListing returns the number of comments for a listing.
func (repo *commentRepository) CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count comments by listing")
	}

	return count, nil
}

// toCommentDomain converts the GORM model to the domain entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        data.ID,
		ListingID: data.ListingID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Content:   data.Content,
		Flagged:   data.Flagged,
		CreatedAt: data.CreatedAt,
	}
}

// fromCommentDomain converts the domain entity to the GORM model.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        data.ID,
		ListingID: data.ListingID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Content:   data.Content,
		Flagged:   data.Flagged,
		CreatedAt: data.CreatedAt,
	}
}
