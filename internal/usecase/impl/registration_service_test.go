package impl

import (
	"context"
	"log/slog"
	"testing"

	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/repository"
	mockRepo "borgo/internal/mocks/repository"
	"borgo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeTxManager runs the callback directly against the test mocks, without a
// real database transaction.
type fakeTxManager struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func (m *fakeTxManager) NewListingRepository() repository.ListingRepository { return m.listingRepo }
func (m *fakeTxManager) NewUserRepository() repository.UserRepository { return m.userRepo }

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func newRegistrationService(t *testing.T) (usecase.RegistrationUsecase, *mockRepo.MockListingRepository, *mockRepo.MockUserRepository) {
	t.Helper()

	listingRepo := mockRepo.NewMockListingRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := &fakeTxManager{listingRepo: listingRepo, userRepo: userRepo}
	svc := NewRegistrationService(listingRepo, userRepo, txManager, slog.New(slog.DiscardHandler))

	return svc, listingRepo, userRepo
}

func businessOwner() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "piero@esempio.it",
		Name:  "Piero",
		Role:  entity.RoleBusinessOwner,
	}
}

func registrationInput() *usecase.RegisterListingInput {
	return &usecase.RegisterListingInput{
		Name:        "Trattoria da Piero",
		CategoryID:  "ristorante",
		Description: "Cucina casalinga",
		Address:     "Via Roma 12",
		Phone:       "+39 02 1234567",
		Latitude:    45.4642,
		Longitude:   9.1919,
	}
}

func TestRegistrationService_Register_CreatesPendingInactiveListing(t *testing.T) {
	svc, listingRepo, userRepo := newRegistrationService(t)

	ctx := context.Background()
	owner := businessOwner()

	userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
	listingRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(nil, nil)
	listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)

	listing, err := svc.Register(ctx, owner.ID, registrationInput())
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, listing.ApprovalStatus)
	assert.False(t, listing.Active)
	assert.False(t, listing.Visible())
	require.NotNil(t, listing.OwnerID)
	assert.Equal(t, owner.ID, *listing.OwnerID)
	assert.InDelta(t, 45.4642, listing.Location.Lat(), 1e-9)
	assert.InDelta(t, 9.1919, listing.Location.Lon(), 1e-9)
}

func TestRegistrationService_Register_BannedOwner(t *testing.T) {
	svc, _, userRepo := newRegistrationService(t)

	ctx := context.Background()
	owner := businessOwner()
	owner.Banned = true
	owner.BanReason = "contenuti inappropriati"

	userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)

	_, err := svc.Register(ctx, owner.ID, registrationInput())
	assert.ErrorIs(t, err, domainerrors.ErrUserBanned)
}

func TestRegistrationService_Register_WrongRole(t *testing.T) {
	svc, _, userRepo := newRegistrationService(t)

	ctx := context.Background()
	owner := businessOwner()
	owner.Role = entity.RoleCustomer

	userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)

	_, err := svc.Register(ctx, owner.ID, registrationInput())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRegistrationService_Register_UnknownOwner(t *testing.T) {
	svc, _, userRepo := newRegistrationService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, ownerID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.Register(ctx, ownerID, registrationInput())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRegistrationService_Register_ExistingListingBlocks(t *testing.T) {
	svc, listingRepo, userRepo := newRegistrationService(t)

	ctx := context.Background()
	owner := businessOwner()
	existing := &entity.Listing{
		ID:             uuid.New(),
		OwnerID:        &owner.ID,
		ApprovalStatus: entity.ApprovalPending,
	}

	userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
	listingRepo.EXPECT().FindByOwner(ctx, owner.ID).Return([]*entity.Listing{existing}, nil)

	_, err := svc.Register(ctx, owner.ID, registrationInput())
	assert.ErrorIs(t, err, domainerrors.ErrOwnerListingExists)
}

func TestRegistrationService_Register_RejectedListingDoesNotBlock(t *testing.T) {
	svc, listingRepo, userRepo := newRegistrationService(t)

	ctx := context.Background()
	owner := businessOwner()
	rejected := &entity.Listing{
		ID:              uuid.New(),
		OwnerID:         &owner.ID,
		ApprovalStatus:  entity.ApprovalRejected,
		RejectionReason: "foto mancante",
	}

	userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
	listingRepo.EXPECT().FindByOwner(ctx, owner.ID).Return([]*entity.Listing{rejected}, nil)
	listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)

	listing, err := svc.Register(ctx, owner.ID, registrationInput())
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, listing.ApprovalStatus)
}

func TestRegistrationService_Register_InvalidInput(t *testing.T) {
	svc, _, userRepo := newRegistrationService(t)

	ctx := context.Background()
	owner := businessOwner()

	userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)

	input := registrationInput()
	input.Name = "  "

	_, err := svc.Register(ctx, owner.ID, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegistrationService_Register_InvalidCoordinates(t *testing.T) {
	svc, _, userRepo := newRegistrationService(t)

	ctx := context.Background()
	owner := businessOwner()

	userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)

	input := registrationInput()
	input.Latitude = 123.0

	_, err := svc.Register(ctx, owner.ID, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestRegistrationService_OwnListings(t *testing.T) {
	svc, listingRepo, _ := newRegistrationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	listings := []*entity.Listing{
		{ID: uuid.New(), OwnerID: &ownerID, ApprovalStatus: entity.ApprovalPending},
		{ID: uuid.New(), OwnerID: &ownerID, ApprovalStatus: entity.ApprovalRejected},
	}

	listingRepo.EXPECT().FindByOwner(ctx, ownerID).Return(listings, nil)

	got, err := svc.OwnListings(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
