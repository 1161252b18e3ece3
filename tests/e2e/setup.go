//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"hotel-registry/cmd/bootstrap"
	"hotel-registry/cmd/bootstrap/components"
	"hotel-registry/internal/pkg/config"
	"hotel-registry/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// E2E application wiring
// Returns router and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.StoreModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("router was not populated by the fx app")
	}
	return router, app
}

// ------------------------------------------------------------
// Shared setup for E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

// SetupSuite hashes the operator password once; bcrypt is too slow to repeat
// for every subtest.
func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Config = authtest.WithOperatorPassword(s.T(), config.NewTestConfig())
	require.NotEmpty(s.T(), s.Config.Operator.PasswordHash, "operator password hash is missing")
}

func (s *SharedSuite) SetupTest() {
	s.reset(s.T())
}

// SetupSubTest starts each subtest from an empty registry.
func (s *SharedSuite) SetupSubTest() {
	s.reset(s.T())
}

func (s *SharedSuite) reset(t *testing.T) {
	router, app := buildE2EApp(s.Config)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	s.Router = router
}

// Login returns an access token for the configured operator.
func (s *SharedSuite) Login() string {
	return authtest.LoginOperator(s.T(), s.Router, s.Config.Operator.Username, authtest.TestOperatorPassword)
}
