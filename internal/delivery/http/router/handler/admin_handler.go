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

// AdminHandler serves the moderation side: the approval queue and listing
// lifecycle actions. Routes using it are role-gated in the router; the
// usecase re-checks the actor role on every call.
type AdminHandler struct {
	approvalSvc usecase.ApprovalUsecase
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(approvalSvc usecase.ApprovalUsecase) *AdminHandler {
	return &AdminHandler{approvalSvc: approvalSvc}
}

// Pending handles GET /admin/listings/pending.
func (h *AdminHandler) Pending(c echo.Context) error {
	listings, err := h.approvalSvc.Pending(c.Request().Context(), actorRole(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// All handles GET /admin/listings, every listing regardless of state.
func (h *AdminHandler) All(c echo.Context) error {
	listings, err := h.approvalSvc.All(c.Request().Context(), actorRole(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Approve handles POST /admin/listings/:id/approve.
func (h *AdminHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	listing, err := h.approvalSvc.Approve(c.Request().Context(), actorRole(c), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, listing, "Attività approvata")
}

type rejectListingRequest struct {
	Reason string `json:"reason"`
}

// Reject handles POST /admin/listings/:id/reject. The reason is mandatory;
// the usecase refuses blank ones.
func (h *AdminHandler) Reject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	var req rejectListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	listing, err := h.approvalSvc.Reject(c.Request().Context(), actorRole(c), id, req.Reason)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, listing, "Attività rifiutata")
}

// ToggleActive handles POST /admin/listings/:id/toggle.
func (h *AdminHandler) ToggleActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	listing, err := h.approvalSvc.ToggleActive(c.Request().Context(), actorRole(c), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// Delete handles DELETE /admin/listings/:id.
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	if err := h.approvalSvc.Delete(c.Request().Context(), actorRole(c), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Attività eliminata")
}

// actorRole picks the strongest role from the verified token. The usecase
// layer decides what that role may do.
func actorRole(c echo.Context) entity.Role {
	roles, ok := c.Get(middleware.ContextKeyRoles).(entity.Roles)
	if !ok {
		return entity.RoleCustomer
	}

	if roles.Contains(entity.RoleAdmin) {
		return entity.RoleAdmin
	}
	if roles.Contains(entity.RoleManager) {
		return entity.RoleManager
	}
	if roles.Contains(entity.RoleBusinessOwner) {
		return entity.RoleBusinessOwner
	}

	return entity.RoleCustomer
}
