package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateListingQR generates a PNG QR code pointing at the public page of
	// a listing, for shopfront display.
	GenerateListingQR(listingID uuid.UUID) ([]byte, error)
}
