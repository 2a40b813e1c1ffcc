package impl

import (
	"context"
	"log/slog"
	"testing"

	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/repository"
	mockRepo "borgo/internal/mocks/repository"
	mockSvc "borgo/internal/mocks/service"
	"borgo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApprovalService(t *testing.T) (usecase.ApprovalUsecase, *mockRepo.MockListingRepository, *mockSvc.MockNotificationService) {
	t.Helper()

	listingRepo := mockRepo.NewMockListingRepository(t)
	notification := mockSvc.NewMockNotificationService(t)
	svc := NewApprovalService(listingRepo, notification, slog.New(slog.DiscardHandler))

	return svc, listingRepo, notification
}

func pendingListing() *entity.Listing {
	ownerID := uuid.New()

	return &entity.Listing{
		ID:             uuid.New(),
		OwnerID:        &ownerID,
		Name:           "Bar Centrale",
		CategoryID:     "bar",
		ApprovalStatus: entity.ApprovalPending,
		Active:         false,
	}
}

func TestApprovalService_Approve_ActivatesListing(t *testing.T) {
	svc, listingRepo, notification := newApprovalService(t)

	ctx := context.Background()
	listing := pendingListing()

	listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().Update(ctx, listing).Return(nil)
	notification.EXPECT().
		NotifyOwner(ctx, listing.OwnerID.String(), mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	updated, err := svc.Approve(ctx, entity.RoleManager, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, updated.ApprovalStatus)
	assert.True(t, updated.Active)
	assert.Empty(t, updated.RejectionReason)
	assert.True(t, updated.Visible())
}

func TestApprovalService_Approve_NotificationFailureIsNotFatal(t *testing.T) {
	svc, listingRepo, notification := newApprovalService(t)

	ctx := context.Background()
	listing := pendingListing()

	listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().Update(ctx, listing).Return(nil)
	notification.EXPECT().
		NotifyOwner(ctx, listing.OwnerID.String(), mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unreachable"))

	updated, err := svc.Approve(ctx, entity.RoleAdmin, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, updated.ApprovalStatus)
}

func TestApprovalService_Approve_ForbiddenForNonModerators(t *testing.T) {
	svc, _, _ := newApprovalService(t)

	_, err := svc.Approve(context.Background(), entity.RoleCustomer, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = svc.Approve(context.Background(), entity.RoleBusinessOwner, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApprovalService_Approve_ListingNotFound(t *testing.T) {
	svc, listingRepo, _ := newApprovalService(t)

	ctx := context.Background()
	id := uuid.New()

	listingRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrListingNotFound)

	_, err := svc.Approve(ctx, entity.RoleManager, id)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestApprovalService_Reject_RequiresReason(t *testing.T) {
	svc, _, _ := newApprovalService(t)

	_, err := svc.Reject(context.Background(), entity.RoleManager, uuid.New(), "")
	assert.ErrorIs(t, err, domainerrors.ErrRejectionReasonRequired)

	_, err = svc.Reject(context.Background(), entity.RoleManager, uuid.New(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrRejectionReasonRequired)
}

func TestApprovalService_Reject_StoresReasonAndDeactivates(t *testing.T) {
	svc, listingRepo, notification := newApprovalService(t)

	ctx := context.Background()
	listing := pendingListing()
	listing.Active = true

	listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().Update(ctx, listing).Return(nil)
	notification.EXPECT().
		NotifyOwner(ctx, listing.OwnerID.String(), mock.Anything, "Indirizzo incompleto", mock.Anything).
		Return(nil)

	updated, err := svc.Reject(ctx, entity.RoleManager, listing.ID, "Indirizzo incompleto")
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, updated.ApprovalStatus)
	assert.False(t, updated.Active)
	assert.Equal(t, "Indirizzo incompleto", updated.RejectionReason)
	assert.False(t, updated.Visible())
}

func TestApprovalService_ToggleActive_FlipsFlagOnly(t *testing.T) {
	svc, listingRepo, _ := newApprovalService(t)

	ctx := context.Background()
	listing := pendingListing()
	listing.ApprovalStatus = entity.ApprovalApproved
	listing.Active = true

	listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().Update(ctx, listing).Return(nil)

	updated, err := svc.ToggleActive(ctx, entity.RoleManager, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, updated.ApprovalStatus)
	assert.False(t, updated.Active)
}

func TestApprovalService_ToggleActive_OnPendingListingStaysInvisible(t *testing.T) {
	svc, listingRepo, _ := newApprovalService(t)

	ctx := context.Background()
	listing := pendingListing()

	listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().Update(ctx, listing).Return(nil)

	updated, err := svc.ToggleActive(ctx, entity.RoleManager, listing.ID)
	require.NoError(t, err)
	assert.True(t, updated.Active)
	assert.False(t, updated.Visible())
}

func TestApprovalService_Delete_RemovesListing(t *testing.T) {
	svc, listingRepo, _ := newApprovalService(t)

	ctx := context.Background()
	listing := pendingListing()

	listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().Delete(ctx, listing.ID).Return(nil)

	require.NoError(t, svc.Delete(ctx, entity.RoleAdmin, listing.ID))
}

func TestApprovalService_Pending_ReturnsPendingOnly(t *testing.T) {
	svc, listingRepo, _ := newApprovalService(t)

	ctx := context.Background()
	listings := []*entity.Listing{pendingListing(), pendingListing()}

	listingRepo.EXPECT().FindByStatus(ctx, entity.ApprovalPending).Return(listings, nil)

	got, err := svc.Pending(ctx, entity.RoleManager)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestApprovalService_Pending_Forbidden(t *testing.T) {
	svc, _, _ := newApprovalService(t)

	_, err := svc.Pending(context.Background(), entity.RoleCustomer)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
