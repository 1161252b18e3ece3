//go:build unit

package api_test

import (
	"errors"

	"hotel-registry/internal/handler/middleware"
	usecasemock "hotel-registry/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const validToken = "valid-token"

// requireAuth wires the real middleware over a validator that accepts only
// validToken.
func requireAuth(ctrl *gomock.Controller, operatorID uuid.UUID) gin.HandlerFunc {
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken(validToken).Return(operatorID, nil).AnyTimes()
	validator.EXPECT().ValidateToken(gomock.Not(validToken)).Return(uuid.Nil, errInvalidToken).AnyTimes()
	return middleware.NewAuthMiddleware(validator).RequireAuth()
}

var errInvalidToken = errors.New("invalid token")
