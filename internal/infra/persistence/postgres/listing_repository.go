package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/repository"
	"borgo/internal/domain/service"
	"borgo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface.
// Every successful write is announced on the change publisher so open clients
// re-fetch; publishing is best effort and never fails the write.
type listingRepository struct {
	db        *gorm.DB
	publisher service.ChangePublisher
	logger    *slog.Logger
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB, publisher service.ChangePublisher, logger *slog.Logger) repository.ListingRepository {
	return &listingRepository{
		db:        db,
		publisher: publisher,
		logger:    logger,
	}
}

// FetchAll retrieves every listing in stable remote order.
func (repo *listingRepository) FetchAll(ctx context.Context) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// FindByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindByOwner retrieves all listings registered by a specific account.
func (repo *listingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by owner")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// FindByStatus retrieves all listings in a given approval stage. The filter
// matches both column generations, so legacy rows surface too.
func (repo *listingRepository) FindByStatus(ctx context.Context, status entity.ApprovalStatus) ([]*entity.Listing, error) {
	query := repo.db.WithContext(ctx)

	switch status {
	case entity.ApprovalApproved:
		query = query.Where("approval_status = ? OR (approval_status = '' AND approved = true)", status.String())
	case entity.ApprovalPending:
		query = query.Where("approval_status = ? OR (approval_status = '' AND approved = false)", status.String())
	default:
		query = query.Where("approval_status = ?", status.String())
	}

	var listingModels []*model.ListingModel
	if err := query.Order("created_at ASC").Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by status")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingCreationFailed.WrapMessage("invalid owner or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrListingCreationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	repo.publishChange(ctx, service.ChangeInsert, listing.ID)

	return nil
}

// Update persists the full current state of an existing listing.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", listing.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(listingM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	repo.publishChange(ctx, service.ChangeUpdate, listing.ID)

	return nil
}

// Delete permanently removes a listing.
func (repo *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ListingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	repo.publishChange(ctx, service.ChangeDelete, id)

	return nil
}

func (repo *listingRepository) publishChange(ctx context.Context, kind service.ChangeKind, id uuid.UUID) {
	if repo.publisher == nil {
		return
	}

	event := &service.ChangeEvent{
		Table:      service.TableListings,
		Kind:       kind,
		RecordID:   id.String(),
		OccurredAt: time.Now(),
	}
	if err := repo.publisher.PublishChange(ctx, event); err != nil {
		repo.logger.Warn("failed to publish listing change event",
			slog.String("listingID", id.String()),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}

// toListingDomain converts the GORM model to the domain entity.
//
// Approval resolution across column generations: a non-empty approval_status
// wins; otherwise the legacy approved boolean maps to approved or pending.
// An unknown status string denies visibility by falling back to pending.
// The nullable active column defaults to true, matching rows written before
// the column existed.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	status := entity.ApprovalStatus(data.ApprovalStatus)
	if data.ApprovalStatus == "" {
		if data.Approved {
			status = entity.ApprovalApproved
		} else {
			status = entity.ApprovalPending
		}
	} else if !status.IsValid() {
		status = entity.ApprovalPending
	}

	active := true
	if data.Active != nil {
		active = *data.Active
	}

	var hours entity.OpeningHours
	if data.Hours != "" {
		// A malformed hours document degrades to "hours unknown" rather than
		// failing the whole fetch.
		_ = json.Unmarshal([]byte(data.Hours), &hours)
	}

	return &entity.Listing{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Name:            data.Name,
		CategoryID:      data.CategoryID,
		Description:     data.Description,
		ImageRef:        data.ImageRef,
		Address:         data.Address,
		Hours:           hours,
		Phone:           data.Phone,
		Rating:          data.Rating,
		ReviewCount:     data.ReviewCount,
		Featured:        data.Featured,
		Location:        orb.Point{data.Longitude, data.Latitude},
		ApprovalStatus:  status,
		Active:          active,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromListingDomain converts the domain entity to the GORM model. Both column
// generations are written so legacy readers keep working during the rollout.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	var hours string
	if len(data.Hours) > 0 {
		if raw, err := json.Marshal(data.Hours); err == nil {
			hours = string(raw)
		}
	}

	active := data.Active

	return &model.ListingModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Name:            data.Name,
		CategoryID:      data.CategoryID,
		Description:     data.Description,
		ImageRef:        data.ImageRef,
		Address:         data.Address,
		Hours:           hours,
		Phone:           data.Phone,
		Rating:          data.Rating,
		ReviewCount:     data.ReviewCount,
		Featured:        data.Featured,
		Latitude:        data.Location.Lat(),
		Longitude:       data.Location.Lon(),
		Approved:        data.ApprovalStatus == entity.ApprovalApproved,
		ApprovalStatus:  data.ApprovalStatus.String(),
		Active:          &active,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
