package shared

import (
	"context"

	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/infra/repository"

	"github.com/google/uuid"
)

// UnitOfWork owns transaction boundaries for the write side. Within opens one
// exclusive scope: everything the callback does against the given DBTX commits
// or rolls back together, and row locks taken inside it are held until then.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx repository.DBTX) error) error
	// DB exposes the pool for single-statement operations that rely on
	// implicit transactions.
	DB() repository.DBTX
}

// CouponRepository is the persistence contract the coupon engine requires.
// Every method runs against the caller-supplied DBTX so lock scopes stay in
// the caller's hands.
type CouponRepository interface {
	ExistsByCode(ctx context.Context, db repository.DBTX, code string) (bool, error)
	FindByCodeForUpdate(ctx context.Context, db repository.DBTX, code string) (*coupon.Coupon, error)
	Insert(ctx context.Context, db repository.DBTX, c *coupon.Coupon) error
	SaveUses(ctx context.Context, db repository.DBTX, c *coupon.Coupon) error
	ExistsUsage(ctx context.Context, db repository.DBTX, couponID uuid.UUID, userID string) (bool, error)
	InsertUsage(ctx context.Context, db repository.DBTX, u *coupon.Usage) error
}
