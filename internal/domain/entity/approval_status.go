// Package entity contains the core business objects of the project.
package entity

// ApprovalStatus represents the moderation lifecycle stage of a listing.
type ApprovalStatus string

const (
	// ApprovalPending indicates a listing awaiting a manager decision.
	ApprovalPending ApprovalStatus = "pending"
	// ApprovalApproved indicates a listing cleared for publication.
	ApprovalApproved ApprovalStatus = "approved"
	// ApprovalRejected indicates a listing refused with a reason.
	ApprovalRejected ApprovalStatus = "rejected"
)

// String returns the string representation of the ApprovalStatus.
func (s ApprovalStatus) String() string {
	return string(s)
}

// IsValid checks if the ApprovalStatus is a valid value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}
