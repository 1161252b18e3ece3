//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-registry/internal/handler/api"
	resdto "hotel-registry/internal/handler/dto/response"
	"hotel-registry/internal/pkg/config"
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/pkg/password"
	"hotel-registry/internal/usecase"
	"hotel-registry/tests/common/builder"
	"hotel-registry/tests/common/httptest"
	"hotel-registry/tests/common/testutil"
	usecasemock "hotel-registry/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockAuth   *usecasemock.MockAuthUseCase
	handler    *api.AuthHandler
	operatorID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth, config.NewTestConfig())
	s.operatorID = usecase.OperatorID("frontdesk")

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", requireAuth(s.mockCtrl, s.operatorID), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	result := &usecase.LoginResult{
		Operator:    usecase.Operator{ID: s.operatorID, Username: "frontdesk"},
		AccessToken: "test-jwt-token",
		ExpiresIn:   time.Hour,
	}

	s.Run("success: sets the cookie and returns the token", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "frontdesk", "password123").Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("test-jwt-token", body.AccessToken)
		s.Equal(int64(3600), body.ExpiresIn)
		s.Equal("frontdesk", body.Operator.Username)

		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Equal("test-jwt-token", cookie.Value)
		s.True(cookie.HttpOnly)
	})

	validation := []testCaseAuth{
		{name: "missing username", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
		{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		{name: "short password", mutate: testutil.Field("password", "short"), expectCode: http.StatusBadRequest},
		{name: "password of 8 chars", mutate: testutil.Field("password", "12345678"), expectCode: http.StatusUnauthorized},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			if tc.expectCode == http.StatusUnauthorized {
				s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, usecase.ErrInvalidCredentials).Times(1)
			}
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 401 for wrong password", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(password.ErrComparisonFailed, usecase.ErrInvalidCredentials)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
		s.Nil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: 500 when the token cannot be issued", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("signing failed"), usecase.ErrTokenGeneration)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	cookie := httptest.ExtractCookie(rec, "access_token")
	s.Require().NotNil(cookie)
	s.Empty(cookie.Value)
	s.Less(cookie.MaxAge, 0)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the operator", func() {
		s.mockAuth.EXPECT().CurrentOperator(gomock.Any(), s.operatorID).
			Return(&usecase.Operator{ID: s.operatorID, Username: "frontdesk"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, validToken)

		var body usecase.Operator
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("frontdesk", body.Username)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 404 for a stale operator", func() {
		s.mockAuth.EXPECT().CurrentOperator(gomock.Any(), s.operatorID).Return(nil, usecase.ErrOperatorNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, validToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Operator not found")
	})
}
