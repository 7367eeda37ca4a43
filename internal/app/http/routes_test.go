package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"remcua-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenWithRole(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(1),
		"email":   "someone@example.com",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return s
}

// Catalog writes, lead handling and uploads are admin-only; a staff token
// must be rejected before any handler runs.
func TestWriteRoutesRejectNonAdmins(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)

	staff := tokenWithRole(t, "staff")

	writes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/curtains"},
		{http.MethodDelete, "/curtains/some-id"},
		{http.MethodPost, "/categories"},
		{http.MethodGet, "/contacts"},
		{http.MethodPost, "/upload/from-device"},
		{http.MethodPost, "/upload/editor"},
	}

	for _, w := range writes {
		t.Run(w.method+" "+w.path, func(t *testing.T) {
			req := httptest.NewRequest(w.method, w.path, nil)
			req.Header.Set("Authorization", "Bearer "+staff)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusForbidden, rr.Code)

			// No token at all is rejected earlier still.
			req = httptest.NewRequest(w.method, w.path, nil)
			rr = httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// An admin token passes the role gate: a malformed body reaches the handler
// and fails binding instead of authorization.
func TestWriteRoutesAdmitAdmins(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/categories", nil)
	req.Header.Set("Authorization", "Bearer "+tokenWithRole(t, "admin"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
