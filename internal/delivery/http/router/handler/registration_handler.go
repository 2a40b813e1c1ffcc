package handler

import (
	"net/http"

	"borgo/internal/delivery/http/middleware"
	"borgo/internal/delivery/http/response"
	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RegistrationHandler serves the business-owner side: submitting a listing
// and reviewing one's own submissions.
type RegistrationHandler struct {
	registrationSvc usecase.RegistrationUsecase
}

// NewRegistrationHandler creates a new RegistrationHandler instance.
func NewRegistrationHandler(registrationSvc usecase.RegistrationUsecase) *RegistrationHandler {
	return &RegistrationHandler{registrationSvc: registrationSvc}
}

type registerListingRequest struct {
	Name        string              `json:"name" validate:"required"`
	CategoryID  string              `json:"category_id" validate:"required"`
	Description string              `json:"description"`
	ImageRef    string              `json:"image_ref"`
	Address     string              `json:"address"`
	Hours       entity.OpeningHours `json:"hours"`
	Phone       string              `json:"phone"`
	Latitude    float64             `json:"latitude" validate:"latitude"`
	Longitude   float64             `json:"longitude" validate:"longitude"`
}

// Register handles POST /owner/listings. The submission always enters the
// moderation queue pending and inactive.
func (h *RegistrationHandler) Register(c echo.Context) error {
	ownerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrForbidden
	}

	var req registerListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	listing, err := h.registrationSvc.Register(c.Request().Context(), ownerID, &usecase.RegisterListingInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		ImageRef:    req.ImageRef,
		Address:     req.Address,
		Hours:       req.Hours,
		Phone:       req.Phone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, listing, "Attività inviata per l'approvazione")
}

// OwnListings handles GET /owner/listings, returning the caller's
// submissions in any state.
func (h *RegistrationHandler) OwnListings(c echo.Context) error {
	ownerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrForbidden
	}

	listings, err := h.registrationSvc.OwnListings(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, listings, "")
}
