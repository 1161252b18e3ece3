package components

import (
	"hotel-registry/internal/pkg/config"
	"hotel-registry/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseReservationModule,
	usecaseAuthModule,
	usecaseValidatorsModule,
)

var usecaseReservationModule = fx.Module("usecase/reservation",
	fx.Provide(
		fx.Annotate(
			usecase.NewReservationCoordinator,
			fx.As(new(usecase.ReservationService)),
		),
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		func(cfg config.Config) config.OperatorConfig { return cfg.Operator },
		usecase.NewAuthUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
