package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListing_Visible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		listing Listing
		visible bool
	}{
		{
			name:    "approved and active",
			listing: Listing{ApprovalStatus: ApprovalApproved, Active: true},
			visible: true,
		},
		{
			name:    "approved but inactive",
			listing: Listing{ApprovalStatus: ApprovalApproved, Active: false},
			visible: false,
		},
		{
			name:    "pending and active",
			listing: Listing{ApprovalStatus: ApprovalPending, Active: true},
			visible: false,
		},
		{
			name:    "rejected and active",
			listing: Listing{ApprovalStatus: ApprovalRejected, Active: true},
			visible: false,
		},
		{
			name:    "zero value is invisible",
			listing: Listing{},
			visible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.visible, tt.listing.Visible())
		})
	}
}

func TestApprovalStatus_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, ApprovalPending.IsValid())
	assert.True(t, ApprovalApproved.IsValid())
	assert.True(t, ApprovalRejected.IsValid())
	assert.False(t, ApprovalStatus("").IsValid())
	assert.False(t, ApprovalStatus("published").IsValid())
}

func TestRole_CanModerate(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleManager.CanModerate())
	assert.True(t, RoleAdmin.CanModerate())
	assert.False(t, RoleCustomer.CanModerate())
	assert.False(t, RoleBusinessOwner.CanModerate())
}
