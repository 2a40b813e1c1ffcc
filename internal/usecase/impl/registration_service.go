package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/geo"
	"borgo/internal/domain/repository"
	"borgo/internal/errors"
	"borgo/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type registrationService struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// NewRegistrationService creates a new registration service instance.
func NewRegistrationService(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.RegistrationUsecase {
	return &registrationService{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Register submits a new listing for moderation. The listing always starts
// pending and inactive regardless of what the submitter sent.
func (s *registrationService) Register(ctx context.Context, ownerID uuid.UUID, input *usecase.RegisterListingInput) (*entity.Listing, error) {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load owner account")
	}

	if owner.Banned {
		return nil, domainerrors.ErrUserBanned
	}
	if owner.Role != entity.RoleBusinessOwner {
		return nil, domainerrors.ErrForbidden
	}

	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	now := time.Now()
	listing := &entity.Listing{
		ID:             uuid.New(),
		OwnerID:        &ownerID,
		Name:           strings.TrimSpace(input.Name),
		CategoryID:     input.CategoryID,
		Description:    strings.TrimSpace(input.Description),
		ImageRef:       input.ImageRef,
		Address:        strings.TrimSpace(input.Address),
		Hours:          input.Hours,
		Phone:          strings.TrimSpace(input.Phone),
		Location:       orb.Point{input.Longitude, input.Latitude},
		ApprovalStatus: entity.ApprovalPending,
		Active:         false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// The quota check and the insert run in one transaction so two concurrent
	// submissions from the same owner cannot both pass the check.
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.NewListingRepository()

		// One listing per owner account. A rejected submission does not count
		// against the quota, so the owner can fix the problem and resubmit.
		existing, err := listingRepo.FindByOwner(ctx, ownerID)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check existing listings")
		}
		for _, l := range existing {
			if l.ApprovalStatus != entity.ApprovalRejected {
				return domainerrors.ErrOwnerListingExists
			}
		}

		if err := listingRepo.Create(ctx, listing); err != nil {
			return domainerrors.ErrListingCreationFailed.WithDetails(err.Error())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("listing registered",
		slog.String("listingID", listing.ID.String()),
		slog.String("ownerID", ownerID.String()),
	)

	return listing, nil
}

// OwnListings retrieves the listings registered by the owner, in any state,
// so the owner dashboard can show pending and rejected submissions too.
func (s *registrationService) OwnListings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	listings, err := s.listingRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load owner listings")
	}

	return listings, nil
}

func validateRegistration(input *usecase.RegisterListingInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed
	}
	if strings.TrimSpace(input.Name) == "" || input.CategoryID == "" {
		return domainerrors.ErrValidationFailed
	}
	if !geo.IsValid(orb.Point{input.Longitude, input.Latitude}) {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	return nil
}
