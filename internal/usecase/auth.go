package usecase

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth.go -package=mock_usecase

import (
	"context"
	"time"

	"hotel-registry/internal/pkg/config"
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/pkg/jwt"
	"hotel-registry/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrOperatorNotFound   = errs.New("operator not found")
	ErrTokenGeneration    = errs.New("token generation failed")
)

// operatorNamespace seeds the deterministic operator id so tokens stay valid
// across restarts with the same username.
var operatorNamespace = uuid.MustParse("6f1c7a52-3a8e-4d1b-9a64-0f3b2f1c9e27")

type Operator struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type LoginResult struct {
	Operator    Operator
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	CurrentOperator(ctx context.Context, operatorID uuid.UUID) (*Operator, error)
}

type authUseCaseImpl struct {
	operator     Operator
	passwordHash string
	jwtService   *jwt.Service
}

func NewAuthUseCase(cfg config.OperatorConfig, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		operator: Operator{
			ID:       OperatorID(cfg.Username),
			Username: cfg.Username,
		},
		passwordHash: cfg.PasswordHash,
		jwtService:   jwtService,
	}
}

func OperatorID(username string) uuid.UUID {
	return uuid.NewSHA1(operatorNamespace, []byte(username))
}

func (a *authUseCaseImpl) Login(_ context.Context, username, pw string) (*LoginResult, error) {
	if username != a.operator.Username {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.passwordHash, pw); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(a.operator.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Operator:    a.operator,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}

func (a *authUseCaseImpl) CurrentOperator(_ context.Context, operatorID uuid.UUID) (*Operator, error) {
	if operatorID != a.operator.ID {
		return nil, ErrOperatorNotFound
	}
	op := a.operator
	return &op, nil
}
