package components

import (
	"coupon-service/internal/handler"
	"coupon-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCouponHandler,
	),
	fx.Invoke(handler.NewRouter),
)
