package usecase

import (
	"context"

	"borgo/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterListingInput carries the fields of a listing registration
// submission. The listing always starts pending and inactive; lifecycle
// fields are not accepted from the submitter.
type RegisterListingInput struct {
	Name        string
	CategoryID  string
	Description string
	ImageRef    string
	Address     string
	Hours       entity.OpeningHours
	Phone       string
	Latitude    float64
	Longitude   float64
}

// RegistrationUsecase handles listing registration by business owners.
type RegistrationUsecase interface {
	// Register submits a new listing for the given owner. Fails when the owner
	// is banned or already has a pending or approved listing.
	Register(ctx context.Context, ownerID uuid.UUID, input *RegisterListingInput) (*entity.Listing, error)

	// OwnListings retrieves the listings registered by the owner, any state.
	OwnListings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)
}
