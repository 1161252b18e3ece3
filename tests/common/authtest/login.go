//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"hotel-registry/internal/handler/dto/request"
	"hotel-registry/internal/pkg/config"
	"hotel-registry/internal/pkg/password"
	"hotel-registry/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const TestOperatorPassword = "password123"

// WithOperatorPassword returns cfg with OPERATOR_PASSWORD_HASH set to the
// hash of TestOperatorPassword.
func WithOperatorPassword(t *testing.T, cfg config.Config) config.Config {
	t.Helper()
	hash, err := password.HashPassword(TestOperatorPassword)
	require.NoError(t, err)
	cfg.Operator.PasswordHash = hash
	return cfg
}

func LoginOperator(t *testing.T, router *gin.Engine, username, pw string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: pw}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func LogoutOperator(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
