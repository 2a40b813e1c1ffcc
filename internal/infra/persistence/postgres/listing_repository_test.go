package postgres

import (
	"testing"
	"time"

	"borgo/internal/domain/entity"
	"borgo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestToListingDomain_ApprovalStatusWinsOverLegacyFlag(t *testing.T) {
	data := &model.ListingModel{
		ID:             uuid.New(),
		Name:           "Bar Centrale",
		ApprovalStatus: "rejected",
		Approved:       true, // Stale legacy column must not override the enum.
		Active:         boolPtr(true),
	}

	listing := toListingDomain(data)
	assert.Equal(t, entity.ApprovalRejected, listing.ApprovalStatus)
	assert.False(t, listing.Visible())
}

func TestToListingDomain_LegacyApprovedTrue(t *testing.T) {
	data := &model.ListingModel{
		ID:       uuid.New(),
		Approved: true,
		Active:   nil, // Legacy row, column added later.
	}

	listing := toListingDomain(data)
	assert.Equal(t, entity.ApprovalApproved, listing.ApprovalStatus)
	assert.True(t, listing.Active)
	assert.True(t, listing.Visible())
}

func TestToListingDomain_LegacyApprovedFalse(t *testing.T) {
	data := &model.ListingModel{
		ID:       uuid.New(),
		Approved: false,
	}

	listing := toListingDomain(data)
	assert.Equal(t, entity.ApprovalPending, listing.ApprovalStatus)
	assert.False(t, listing.Visible())
}

func TestToListingDomain_UnknownStatusDeniesVisibility(t *testing.T) {
	data := &model.ListingModel{
		ID:             uuid.New(),
		ApprovalStatus: "archived",
		Approved:       true,
		Active:         boolPtr(true),
	}

	listing := toListingDomain(data)
	assert.Equal(t, entity.ApprovalPending, listing.ApprovalStatus)
	assert.False(t, listing.Visible())
}

func TestToListingDomain_ExplicitInactive(t *testing.T) {
	data := &model.ListingModel{
		ID:             uuid.New(),
		ApprovalStatus: "approved",
		Active:         boolPtr(false),
	}

	listing := toListingDomain(data)
	assert.False(t, listing.Active)
	assert.False(t, listing.Visible())
}

func TestToListingDomain_ParsesHoursAndLocation(t *testing.T) {
	data := &model.ListingModel{
		ID:        uuid.New(),
		Hours:     `{"monday":{"open":"08:00","close":"19:00"}}`,
		Latitude:  45.4642,
		Longitude: 9.1919,
	}

	listing := toListingDomain(data)
	require.Contains(t, listing.Hours, "monday")
	assert.Equal(t, "08:00", listing.Hours["monday"].Open)
	assert.InDelta(t, 45.4642, listing.Location.Lat(), 1e-9)
	assert.InDelta(t, 9.1919, listing.Location.Lon(), 1e-9)
}

func TestToListingDomain_MalformedHoursDegradesToUnknown(t *testing.T) {
	data := &model.ListingModel{
		ID:    uuid.New(),
		Hours: `{not-json`,
	}

	listing := toListingDomain(data)
	assert.Empty(t, listing.Hours)
}

func TestFromListingDomain_WritesBothColumnGenerations(t *testing.T) {
	ownerID := uuid.New()
	listing := &entity.Listing{
		ID:             uuid.New(),
		OwnerID:        &ownerID,
		Name:           "Trattoria da Piero",
		CategoryID:     "ristorante",
		Hours:          entity.OpeningHours{"friday": {Open: "12:00", Close: "23:00"}},
		ApprovalStatus: entity.ApprovalApproved,
		Active:         true,
		CreatedAt:      time.Now(),
	}

	data := fromListingDomain(listing)
	assert.Equal(t, "approved", data.ApprovalStatus)
	assert.True(t, data.Approved)
	require.NotNil(t, data.Active)
	assert.True(t, *data.Active)
	assert.Contains(t, data.Hours, `"friday"`)
}

func TestFromListingDomain_RejectedClearsLegacyFlag(t *testing.T) {
	listing := &entity.Listing{
		ID:              uuid.New(),
		ApprovalStatus:  entity.ApprovalRejected,
		Active:          false,
		RejectionReason: "Indirizzo incompleto",
	}

	data := fromListingDomain(listing)
	assert.Equal(t, "rejected", data.ApprovalStatus)
	assert.False(t, data.Approved)
	require.NotNil(t, data.Active)
	assert.False(t, *data.Active)
	assert.Equal(t, "Indirizzo incompleto", data.RejectionReason)
}

func TestListingRoundTrip_PreservesVisibility(t *testing.T) {
	listing := &entity.Listing{
		ID:             uuid.New(),
		Name:           "Forno Vecchio",
		CategoryID:     "alimentari",
		ApprovalStatus: entity.ApprovalApproved,
		Active:         true,
	}

	got := toListingDomain(fromListingDomain(listing))
	assert.Equal(t, listing.ApprovalStatus, got.ApprovalStatus)
	assert.Equal(t, listing.Active, got.Active)
	assert.True(t, got.Visible())
}
