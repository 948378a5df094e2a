package components

import (
	"log/slog"

	"coupon-service/internal/infra/readstore"
	"coupon-service/internal/infra/repository"
	"coupon-service/internal/infra/uow"
	"coupon-service/internal/usecase/queries"
	"coupon-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			NewCouponRepository,
			fx.As(new(shared.CouponRepository)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}

func NewCouponRepository(logger *slog.Logger) *repository.CouponRepository {
	return repository.NewCouponRepository(logger)
}
