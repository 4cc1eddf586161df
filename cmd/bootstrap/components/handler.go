package components

import (
	"hotelhub/internal/handler"
	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewHotelHandler,
		api.NewRoomTypeHandler,
		api.NewBookingHandler,
		NewTokenValidator,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authUseCase, cfg.Cookie, cfg.JWT)
}

func NewTokenValidator(authUseCase usecase.AuthUseCase) middleware.TokenValidator {
	return authUseCase
}
