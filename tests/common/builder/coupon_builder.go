//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "coupon-service/internal/domain/coupon"
	reqdto "coupon-service/internal/handler/dto/request"
	"coupon-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID          uuid.UUID
	Code        string
	MaxUses     int
	CurrentUses int
	Country     string
	CreatedAt   time.Time
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:          uuid.New(),
		Code:        "SALE10",
		MaxUses:     2,
		CurrentUses: 0,
		Country:     "PL",
		CreatedAt:   time.Now(),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.New(b.ID, b.Code, b.MaxUses, b.Country, b.CreatedAt)
}

// BuildRestored mimics a coupon loaded from storage, so CurrentUses can be
// set to any value the scenario needs.
func (b *CouponBuilder) BuildRestored() *domcoupon.Coupon {
	return domcoupon.Restore(b.ID, b.Code, b.MaxUses, b.CurrentUses, b.Country, b.CreatedAt)
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:    b.Code,
		MaxUses: b.MaxUses,
		Country: b.Country,
	}
}

func (b *CouponBuilder) BuildRedeemRequestDTO() reqdto.RedeemCouponRequest {
	return reqdto.RedeemCouponRequest{
		UserID:    "user-1",
		IPAddress: "83.0.0.1",
	}
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		Code:        b.Code,
		CurrentUses: b.CurrentUses,
		MaxUses:     b.MaxUses,
		Country:     b.Country,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithMaxUses(maxUses int) *CouponBuilder {
	b.MaxUses = maxUses
	return b
}

func (b *CouponBuilder) WithCurrentUses(currentUses int) *CouponBuilder {
	b.CurrentUses = currentUses
	return b
}

func (b *CouponBuilder) WithCountry(country string) *CouponBuilder {
	b.Country = country
	return b
}

func (b *CouponBuilder) WithCreatedAt(createdAt time.Time) *CouponBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *CouponBuilder) AsExhausted() *CouponBuilder {
	b.CurrentUses = b.MaxUses
	return b
}
