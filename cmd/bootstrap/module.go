package bootstrap

import (
	"hotelhub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RedisModule,
	BrokerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
