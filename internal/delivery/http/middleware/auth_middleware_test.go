package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"borgo/internal/domain/entity"
	"borgo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.Claims
	err    error
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	return s.claims, s.err
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	m := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{
		UserID: userID,
		Roles:  []string{"manager", "customer"},
	}})

	c, rec := newAuthContext("Bearer token")
	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, entity.Roles{entity.RoleManager, entity.RoleCustomer}, c.Get(ContextKeyRoles))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	c, rec := newAuthContext("")
	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	c, rec := newAuthContext("Basic abc")
	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{err: errors.New("expired")})

	c, rec := newAuthContext("Bearer token")
	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_DropsUnknownRoles(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{
		UserID: uuid.New(),
		Roles:  []string{"superuser", "admin"},
	}})

	c, _ := newAuthContext("Bearer token")
	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, entity.Roles{entity.RoleAdmin}, c.Get(ContextKeyRoles))
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	tests := []struct {
		name     string
		roles    any
		required entity.Role
		want     int
	}{
		{
			name:     "has role",
			roles:    entity.Roles{entity.RoleBusinessOwner},
			required: entity.RoleBusinessOwner,
			want:     http.StatusOK,
		},
		{
			name:     "missing role",
			roles:    entity.Roles{entity.RoleCustomer},
			required: entity.RoleBusinessOwner,
			want:     http.StatusForbidden,
		},
		{
			name:     "no role information",
			roles:    nil,
			required: entity.RoleBusinessOwner,
			want:     http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("")
			if tt.roles != nil {
				c.Set(ContextKeyRoles, tt.roles)
			}

			require.NoError(t, m.RequireRole(tt.required)(okHandler)(c))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireModerator(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	tests := []struct {
		name  string
		roles entity.Roles
		want  int
	}{
		{name: "manager passes", roles: entity.Roles{entity.RoleManager}, want: http.StatusOK},
		{name: "admin passes", roles: entity.Roles{entity.RoleAdmin}, want: http.StatusOK},
		{name: "owner refused", roles: entity.Roles{entity.RoleBusinessOwner}, want: http.StatusForbidden},
		{name: "customer refused", roles: entity.Roles{entity.RoleCustomer}, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("")
			c.Set(ContextKeyRoles, tt.roles)

			require.NoError(t, m.RequireModerator()(okHandler)(c))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
