//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"hotel-registry/internal/pkg/clock"
	"hotel-registry/internal/pkg/config"
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/pkg/jwt"
	"hotel-registry/internal/usecase"
	"hotel-registry/tests/common/authtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthUseCase(t *testing.T) {
	cfg := authtest.WithOperatorPassword(t, config.NewTestConfig())
	jwtService := jwt.NewService(cfg.JWT.Secret, time.Hour, clock.NewRealClock())
	auth := usecase.NewAuthUseCase(cfg.Operator, jwtService)
	validator := usecase.NewTokenValidator(jwtService)

	t.Run("login issues a token for the operator", func(t *testing.T) {
		result, err := auth.Login(t.Context(), "frontdesk", authtest.TestOperatorPassword)
		require.NoError(t, err)

		assert.Equal(t, usecase.OperatorID("frontdesk"), result.Operator.ID)
		assert.Equal(t, "frontdesk", result.Operator.Username)
		assert.Equal(t, time.Hour, result.ExpiresIn)

		operatorID, err := validator.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.Operator.ID, operatorID)
	})

	t.Run("operator id is stable per username", func(t *testing.T) {
		assert.Equal(t, usecase.OperatorID("frontdesk"), usecase.OperatorID("frontdesk"))
		assert.NotEqual(t, usecase.OperatorID("frontdesk"), usecase.OperatorID("nightshift"))
	})

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "frontdesk", password: "password124"},
		{name: "unknown username", username: "nightshift", password: authtest.TestOperatorPassword},
		{name: "empty password", username: "frontdesk", password: ""},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			result, err := auth.Login(t.Context(), tc.username, tc.password)
			require.Error(t, err)
			assert.True(t, errs.Is(err, usecase.ErrInvalidCredentials))
			assert.Nil(t, result)
		})
	}

	t.Run("current operator", func(t *testing.T) {
		op, err := auth.CurrentOperator(t.Context(), usecase.OperatorID("frontdesk"))
		require.NoError(t, err)
		assert.Equal(t, "frontdesk", op.Username)

		_, err = auth.CurrentOperator(t.Context(), uuid.New())
		require.ErrorIs(t, err, usecase.ErrOperatorNotFound)
	})
}
