package bootstrap

import (
	"coupon-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	GeoIPModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
