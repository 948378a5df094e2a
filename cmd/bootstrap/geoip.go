package bootstrap

import (
	"coupon-service/internal/infra/geoip"
	"coupon-service/internal/pkg/config"
	"coupon-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var GeoIPModule = fx.Module("geoip",
	fx.Provide(
		fx.Annotate(
			NewGeoIPClient,
			fx.As(new(commands.CountryResolver)),
		),
	),
)

func NewGeoIPClient(cfg config.Config) *geoip.Client {
	return geoip.NewClient(cfg.GeoIP)
}
