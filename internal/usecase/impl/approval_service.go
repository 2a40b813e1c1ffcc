package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/repository"
	"borgo/internal/domain/service"
	"borgo/internal/errors"
	"borgo/internal/usecase"

	"github.com/google/uuid"
)

type approvalService struct {
	listingRepo  repository.ListingRepository
	notification service.NotificationService
	logger       *slog.Logger
}

// NewApprovalService creates a new approval service instance.
func NewApprovalService(
	listingRepo repository.ListingRepository,
	notification service.NotificationService,
	logger *slog.Logger,
) usecase.ApprovalUsecase {
	return &approvalService{
		listingRepo:  listingRepo,
		notification: notification,
		logger:       logger,
	}
}

// Pending retrieves all listings awaiting a decision.
func (s *approvalService) Pending(ctx context.Context, actor entity.Role) ([]*entity.Listing, error) {
	if !actor.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	listings, err := s.listingRepo.FindByStatus(ctx, entity.ApprovalPending)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load pending listings")
	}

	return listings, nil
}

// All retrieves every listing regardless of state.
func (s *approvalService) All(ctx context.Context, actor entity.Role) ([]*entity.Listing, error) {
	if !actor.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	listings, err := s.listingRepo.FetchAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load listings")
	}

	return listings, nil
}

// Approve publishes a listing. Approval also sets the active flag, so a
// freshly approved listing is immediately visible without a second action.
func (s *approvalService) Approve(ctx context.Context, actor entity.Role, id uuid.UUID) (*entity.Listing, error) {
	if !actor.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	listing, err := s.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.ApprovalStatus = entity.ApprovalApproved
	listing.Active = true
	listing.RejectionReason = ""
	listing.UpdatedAt = time.Now()

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, domainerrors.ErrListingUpdateFailed.WithDetails(err.Error())
	}

	s.notifyOwner(ctx, listing, "Attività approvata",
		"La tua attività \""+listing.Name+"\" è ora visibile nella directory.")

	return listing, nil
}

// Reject refuses a listing. The reason is mandatory: owners must always know
// why their submission was turned down.
func (s *approvalService) Reject(ctx context.Context, actor entity.Role, id uuid.UUID, reason string) (*entity.Listing, error) {
	if !actor.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ErrRejectionReasonRequired
	}

	listing, err := s.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.ApprovalStatus = entity.ApprovalRejected
	listing.Active = false
	listing.RejectionReason = reason
	listing.UpdatedAt = time.Now()

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, domainerrors.ErrListingUpdateFailed.WithDetails(err.Error())
	}

	s.notifyOwner(ctx, listing, "Attività non approvata", reason)

	return listing, nil
}

// ToggleActive flips the active flag without touching the approval stage.
// On a non-approved listing the toggle is stored but has no visible effect,
// since visibility requires both conditions.
func (s *approvalService) ToggleActive(ctx context.Context, actor entity.Role, id uuid.UUID) (*entity.Listing, error) {
	if !actor.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	listing, err := s.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.Active = !listing.Active
	listing.UpdatedAt = time.Now()

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, domainerrors.ErrListingUpdateFailed.WithDetails(err.Error())
	}

	return listing, nil
}

// Delete permanently removes a listing.
func (s *approvalService) Delete(ctx context.Context, actor entity.Role, id uuid.UUID) error {
	if !actor.CanModerate() {
		return domainerrors.ErrForbidden
	}

	if _, err := s.findListing(ctx, id); err != nil {
		return err
	}

	if err := s.listingRepo.Delete(ctx, id); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete listing")
	}

	return nil
}

func (s *approvalService) findListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load listing")
	}

	return listing, nil
}

// notifyOwner delivers a moderation outcome to the owner topic. Delivery is
// best effort; a push failure never rolls back the decision.
func (s *approvalService) notifyOwner(ctx context.Context, listing *entity.Listing, title, body string) {
	if listing.OwnerID == nil {
		return
	}

	data := map[string]string{
		"listing_id": listing.ID.String(),
		"status":     listing.ApprovalStatus.String(),
	}
	if err := s.notification.NotifyOwner(ctx, listing.OwnerID.String(), title, body, data); err != nil {
		s.logger.Warn("owner notification failed",
			slog.String("listingID", listing.ID.String()),
			slog.Any("error", err),
		)
	}
}
