//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB wipes all coupon state so each subtest starts from a clean slate.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE coupon_usages, coupons RESTART IDENTITY CASCADE")
	return err
}

// CountUsages returns the number of recorded redemptions for a coupon code.
func CountUsages(pool *pgxpool.Pool, code string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int
	err := pool.QueryRow(ctx, `
		SELECT count(*)
		FROM coupon_usages u
		JOIN coupons c ON c.id = u.coupon_id
		WHERE upper(c.code) = upper($1)
	`, code).Scan(&count)
	return count, err
}
