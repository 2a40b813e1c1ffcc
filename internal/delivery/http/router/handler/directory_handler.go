package handler

import (
	"net/http"
	"strconv"

	"borgo/internal/delivery/http/middleware"
	"borgo/internal/delivery/http/response"
	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/service"
	"borgo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// DirectoryHandler serves the public read side: browsing, reviews, QR codes
// and the sync status of the listing snapshot.
type DirectoryHandler struct {
	directorySvc usecase.DirectoryUsecase
	syncSvc      usecase.SyncUsecase
	qrcodeSvc    service.QRCodeService
}

// DirectoryHandlerParams holds dependencies for the DirectoryHandler.
type DirectoryHandlerParams struct {
	fx.In

	DirectorySvc usecase.DirectoryUsecase
	SyncSvc      usecase.SyncUsecase
	QRCodeSvc    service.QRCodeService
}

// NewDirectoryHandler creates a new DirectoryHandler instance.
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directorySvc: params.DirectorySvc,
		syncSvc:      params.SyncSvc,
		qrcodeSvc:    params.QRCodeSvc,
	}
}

// Browse handles GET /listings. Query parameters: category, q, sort
// (rating or distance), lat and lng. A partial or unparsable position is
// ignored and the ranking degrades to rating order.
func (h *DirectoryHandler) Browse(c echo.Context) error {
	query := &usecase.BrowseQuery{
		CategoryID: c.QueryParam("category"),
		Query:      c.QueryParam("q"),
		Sort:       usecase.SortMode(c.QueryParam("sort")),
		Location:   parseLocation(c.QueryParam("lat"), c.QueryParam("lng")),
	}

	results := h.directorySvc.Browse(c.Request().Context(), query)

	return response.Success(c, http.StatusOK, map[string]any{
		"listings":   results,
		"last_error": h.syncSvc.LastError(),
	}, "")
}

// Status handles GET /listings/status with the snapshot size and the message
// of the last failed reload, if any.
func (h *DirectoryHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"listings":   len(h.syncSvc.Snapshot()),
		"last_error": h.syncSvc.LastError(),
	}, "")
}

// Refetch handles POST /listings/refetch, the user-facing retry after a
// failed reload.
func (h *DirectoryHandler) Refetch(c echo.Context) error {
	if err := h.syncSvc.Refetch(c.Request().Context()); err != nil {
		return domainerrors.ErrFetchFailed
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"listings": len(h.syncSvc.Snapshot()),
	}, "")
}

// Comments handles GET /listings/:id/comments.
func (h *DirectoryHandler) Comments(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	comments, err := h.directorySvc.Comments(c.Request().Context(), listingID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, comments, "")
}

type addCommentRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"required"`
}

// AddComment handles POST /listings/:id/comments. Requires authentication;
// the author is taken from the verified token.
func (h *DirectoryHandler) AddComment(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrForbidden
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	comment, err := h.directorySvc.AddComment(c.Request().Context(), userID, listingID, req.Rating, req.Content)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, comment, "")
}

// QRCode handles GET /listings/:id/qrcode and returns a PNG pointing at the
// listing's public page, for shopfront display.
func (h *DirectoryHandler) QRCode(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	png, err := h.qrcodeSvc.GenerateListingQR(listingID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseLocation builds a position from the lat and lng query parameters.
// Both must be present and numeric; anything else means no position.
func parseLocation(latStr, lngStr string) *orb.Point {
	if latStr == "" || lngStr == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}

	point := entity.UserLocation{Latitude: lat, Longitude: lng}.Point()

	return &point
}
