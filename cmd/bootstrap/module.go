package bootstrap

import (
	"experience-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	NotifyModule,
	components.PersistenceModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
