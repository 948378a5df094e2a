package queries

import (
	"context"
	"time"

	"coupon-service/internal/infra"
	"coupon-service/internal/pkg/errs"
)

// CouponView is the public projection of a coupon returned by both the write
// pipelines and the read side.
type CouponView struct {
	Code        string    `json:"code"`
	CurrentUses int       `json:"currentUses"`
	MaxUses     int       `json:"maxUses"`
	Country     string    `json:"country"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
}

type CouponQueries interface {
	GetByCode(ctx context.Context, code string) (*CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) GetByCode(ctx context.Context, code string) (*CouponView, error) {
	view, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCouponNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
