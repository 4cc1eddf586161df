package components

import (
	"log/slog"

	"hotelhub/internal/infra/payment"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewPaymentGateway,
		usecase.NewAuthUseCase,
		usecase.NewHotelUseCase,
		usecase.NewRoomTypeUseCase,
		usecase.NewBookingUseCase,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) usecase.PaymentGateway {
	// Only the demo provider exists today; the config hook is where a real
	// processor would branch in.
	return payment.NewDemoGateway(cfg.Payment, logger)
}
