package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type CouponRepository struct {
	logger *slog.Logger
}

func NewCouponRepository(logger *slog.Logger) *CouponRepository {
	return &CouponRepository{logger: logger}
}

const couponColumns = "id, code, max_uses, current_uses, country, created_at"

func (r *CouponRepository) ExistsByCode(ctx context.Context, db DBTX, code string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM coupons WHERE upper(code) = upper($1))",
		code,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check coupon existence", err)
	}
	return exists, nil
}

// FindByCodeForUpdate locks the coupon row until the enclosing transaction
// commits or rolls back. Concurrent redemptions of the same code serialize
// here.
func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, db DBTX, code string) (*coupon.Coupon, error) {
	row := db.QueryRow(ctx,
		"SELECT "+couponColumns+" FROM coupons WHERE upper(code) = upper($1) FOR UPDATE",
		code,
	)
	return r.scanCoupon(row, code)
}

func (r *CouponRepository) Insert(ctx context.Context, db DBTX, c *coupon.Coupon) error {
	_, err := db.Exec(ctx,
		"INSERT INTO coupons (id, code, max_uses, current_uses, country, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		c.ID(), c.Code().String(), c.MaxUses(), c.CurrentUses(), c.Country().String(), c.CreatedAt(),
	)
	if err != nil {
		if isPgErrCode(err, pgErrCodeUniqueViolation) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "coupon code already exists", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert coupon", err)
	}
	return nil
}

// SaveUses persists the incremented counter. Callers must hold the row lock
// acquired by FindByCodeForUpdate on the same transaction.
func (r *CouponRepository) SaveUses(ctx context.Context, db DBTX, c *coupon.Coupon) error {
	tag, err := db.Exec(ctx,
		"UPDATE coupons SET current_uses = $2 WHERE id = $1",
		c.ID(), c.CurrentUses(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save coupon uses", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "coupon row vanished during update", nil)
	}
	return nil
}

func (r *CouponRepository) ExistsUsage(ctx context.Context, db DBTX, couponID uuid.UUID, userID string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM coupon_usages WHERE coupon_id = $1 AND user_id = $2)",
		couponID, userID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check coupon usage", err)
	}
	return exists, nil
}

// InsertUsage relies on the unique (coupon_id, user_id) constraint as the
// second guard against double redemption; a violation surfaces as
// KindDuplicateKey even if the row-lock discipline was bypassed.
func (r *CouponRepository) InsertUsage(ctx context.Context, db DBTX, u *coupon.Usage) error {
	_, err := db.Exec(ctx,
		"INSERT INTO coupon_usages (coupon_id, user_id, used_at) VALUES ($1, $2, $3)",
		u.CouponID(), u.UserID(), u.UsedAt(),
	)
	if err != nil {
		if isPgErrCode(err, pgErrCodeUniqueViolation) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "usage already recorded for user", err)
		}
		if isPgErrCode(err, pgErrCodeForeignKeyViolation) {
			return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, "usage references unknown coupon", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert coupon usage", err)
	}
	return nil
}

func (r *CouponRepository) scanCoupon(row pgx.Row, code string) (*coupon.Coupon, error) {
	var (
		id          uuid.UUID
		storedCode  string
		maxUses     int
		currentUses int
		country     string
		createdAt   time.Time
	)
	if err := row.Scan(&id, &storedCode, &maxUses, &currentUses, &country, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "coupon not found: "+code, err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan coupon", err)
	}
	return coupon.Restore(id, storedCode, maxUses, currentUses, country, createdAt), nil
}

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
