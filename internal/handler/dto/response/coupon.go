package response

import (
	"time"

	"coupon-service/internal/usecase/queries"
)

type CouponResponse struct {
	Code        string    `json:"code"`
	CurrentUses int       `json:"currentUses"`
	MaxUses     int       `json:"maxUses"`
	Country     string    `json:"country"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromCouponView(view *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		Code:        view.Code,
		CurrentUses: view.CurrentUses,
		MaxUses:     view.MaxUses,
		Country:     view.Country,
		CreatedAt:   view.CreatedAt,
	}
}
