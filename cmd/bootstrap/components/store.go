package components

import (
	"hotel-registry/internal/usecase"

	"go.uber.org/fx"
)

// One instance of each store per process; the coordinator and the handlers
// share them.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			usecase.NewCustomerStore,
			fx.As(new(usecase.CustomerService)),
			fx.As(new(usecase.CustomerDirectory)),
		),
		fx.Annotate(
			usecase.NewHotelStore,
			fx.As(new(usecase.HotelService)),
			fx.As(new(usecase.RoomInventory)),
		),
	),
)
