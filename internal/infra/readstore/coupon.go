package readstore

import (
	"context"
	"errors"
	"log/slog"

	"coupon-service/internal/infra"
	"coupon-service/internal/infra/repository"
	"coupon-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type CouponReadStore struct {
	db     repository.DBTX
	logger *slog.Logger
}

func NewCouponReadStore(db repository.DBTX, logger *slog.Logger) *CouponReadStore {
	return &CouponReadStore{db: db, logger: logger}
}

func (s *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	var view queries.CouponView
	err := s.db.QueryRow(ctx,
		"SELECT code, current_uses, max_uses, country, created_at FROM coupons WHERE upper(code) = upper($1)",
		code,
	).Scan(&view.Code, &view.CurrentUses, &view.MaxUses, &view.Country, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "coupon not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read coupon", err)
	}
	return &view, nil
}
