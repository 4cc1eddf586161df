package bootstrap

import (
	"context"
	"log/slog"

	"hotelhub/internal/infra/events"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.EventPublisher, error) {
	if cfg.Broker.URL == "" {
		logger.Info("no broker configured, booking events are dropped")
		return events.NewNopPublisher(), nil
	}

	publisher, cleanup, err := events.NewAMQPPublisher(cfg.Broker, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher, nil
}
