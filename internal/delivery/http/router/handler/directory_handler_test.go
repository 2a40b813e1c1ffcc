package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"borgo/internal/delivery/http/middleware"
	"borgo/internal/delivery/http/validator"
	"borgo/internal/domain/entity"
	"borgo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct {
	lastQuery *usecase.BrowseQuery
	results   []*usecase.RankedListing
	comments  []*entity.Comment
	added     *entity.Comment
	err       error
}

func (s *stubDirectory) Browse(_ context.Context, query *usecase.BrowseQuery) []*usecase.RankedListing {
	s.lastQuery = query

	return s.results
}

func (s *stubDirectory) Comments(_ context.Context, _ uuid.UUID) ([]*entity.Comment, error) {
	return s.comments, s.err
}

func (s *stubDirectory) AddComment(_ context.Context, userID, listingID uuid.UUID, rating int, content string) (*entity.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.added = &entity.Comment{UserID: userID, ListingID: listingID, Rating: rating, Content: content}

	return s.added, nil
}

type stubSync struct {
	listings []*entity.Listing
	lastErr  string
	refetch  error
}

func (s *stubSync) Start(context.Context) error   { return nil }
func (s *stubSync) Close() error                  { return nil }
func (s *stubSync) Snapshot() []*entity.Listing   { return s.listings }
func (s *stubSync) Refetch(context.Context) error { return s.refetch }
func (s *stubSync) LastError() string             { return s.lastErr }

type stubQRCode struct {
	png []byte
	err error
}

func (s *stubQRCode) GenerateListingQR(uuid.UUID) ([]byte, error) {
	return s.png, s.err
}

func newDirectoryHandler(dir *stubDirectory, sync *stubSync, qr *stubQRCode) *DirectoryHandler {
	return NewDirectoryHandler(DirectoryHandlerParams{
		DirectorySvc: dir,
		SyncSvc:      sync,
		QRCodeSvc:    qr,
	})
}

func newRequestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBrowse_PassesQueryParameters(t *testing.T) {
	dir := &stubDirectory{}
	h := newDirectoryHandler(dir, &stubSync{}, &stubQRCode{})

	c, rec := newRequestContext(http.MethodGet, "/listings?category=bar&q=caffe&sort=distance&lat=45.4642&lng=9.1919", "")
	require.NoError(t, h.Browse(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, dir.lastQuery)
	assert.Equal(t, "bar", dir.lastQuery.CategoryID)
	assert.Equal(t, "caffe", dir.lastQuery.Query)
	assert.Equal(t, usecase.SortByDistance, dir.lastQuery.Sort)
	require.NotNil(t, dir.lastQuery.Location)
	assert.InDelta(t, 45.4642, dir.lastQuery.Location.Lat(), 1e-9)
	assert.InDelta(t, 9.1919, dir.lastQuery.Location.Lon(), 1e-9)
}

func TestBrowse_PartialPositionIgnored(t *testing.T) {
	dir := &stubDirectory{}
	h := newDirectoryHandler(dir, &stubSync{}, &stubQRCode{})

	c, _ := newRequestContext(http.MethodGet, "/listings?lat=45.4642", "")
	require.NoError(t, h.Browse(c))

	require.NotNil(t, dir.lastQuery)
	assert.Nil(t, dir.lastQuery.Location)
}

func TestBrowse_UnparsablePositionIgnored(t *testing.T) {
	dir := &stubDirectory{}
	h := newDirectoryHandler(dir, &stubSync{}, &stubQRCode{})

	c, _ := newRequestContext(http.MethodGet, "/listings?lat=abc&lng=9.19", "")
	require.NoError(t, h.Browse(c))

	require.NotNil(t, dir.lastQuery)
	assert.Nil(t, dir.lastQuery.Location)
}

func TestBrowse_IncludesLastSyncError(t *testing.T) {
	h := newDirectoryHandler(&stubDirectory{}, &stubSync{lastErr: "Impossibile caricare le attività, riprova"}, &stubQRCode{})

	c, rec := newRequestContext(http.MethodGet, "/listings", "")
	require.NoError(t, h.Browse(c))

	assert.Contains(t, rec.Body.String(), "Impossibile caricare le attività, riprova")
}

func TestQRCode_ReturnsPNG(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	h := newDirectoryHandler(&stubDirectory{}, &stubSync{}, &stubQRCode{png: png})

	c, rec := newRequestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	require.NoError(t, h.QRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestQRCode_InvalidID(t *testing.T) {
	h := newDirectoryHandler(&stubDirectory{}, &stubSync{}, &stubQRCode{})

	c, _ := newRequestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	assert.Error(t, h.QRCode(c))
}

func TestAddComment_UsesTokenIdentity(t *testing.T) {
	dir := &stubDirectory{}
	h := newDirectoryHandler(dir, &stubSync{}, &stubQRCode{})

	userID := uuid.New()
	listingID := uuid.New()

	c, rec := newRequestContext(http.MethodPost, "/", `{"rating":5,"content":"Ottimo"}`)
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.AddComment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, dir.added)
	assert.Equal(t, userID, dir.added.UserID)
	assert.Equal(t, listingID, dir.added.ListingID)
	assert.Equal(t, 5, dir.added.Rating)
}

func TestAddComment_RejectsOutOfRangeRating(t *testing.T) {
	dir := &stubDirectory{}
	h := newDirectoryHandler(dir, &stubSync{}, &stubQRCode{})

	c, _ := newRequestContext(http.MethodPost, "/", `{"rating":6,"content":"Ottimo"}`)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	c.Set(middleware.ContextKeyUserID, uuid.New())

	assert.Error(t, h.AddComment(c))
	assert.Nil(t, dir.added)
}

func TestAddComment_WithoutIdentity(t *testing.T) {
	h := newDirectoryHandler(&stubDirectory{}, &stubSync{}, &stubQRCode{})

	c, _ := newRequestContext(http.MethodPost, "/", `{"rating":5,"content":"Ottimo"}`)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	assert.Error(t, h.AddComment(c))
}

func TestRefetch_Failure(t *testing.T) {
	h := newDirectoryHandler(&stubDirectory{}, &stubSync{refetch: assert.AnError}, &stubQRCode{})

	c, _ := newRequestContext(http.MethodPost, "/listings/refetch", "")
	assert.Error(t, h.Refetch(c))
}

func TestStatus_ReportsSnapshotSize(t *testing.T) {
	h := newDirectoryHandler(&stubDirectory{}, &stubSync{listings: []*entity.Listing{{}, {}}}, &stubQRCode{})

	c, rec := newRequestContext(http.MethodGet, "/listings/status", "")
	require.NoError(t, h.Status(c))
	assert.Contains(t, rec.Body.String(), `"listings":2`)
}
