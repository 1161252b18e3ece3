package components

import (
	"hotel-registry/internal/handler"
	"hotel-registry/internal/handler/api"
	"hotel-registry/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCustomerHandler,
		api.NewHotelHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
