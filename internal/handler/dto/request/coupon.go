package request

type CreateCouponRequest struct {
	Code    string `json:"code" binding:"required"`
	MaxUses int    `json:"maxUses" binding:"required,gt=0"`
	Country string `json:"country" binding:"required,len=2"`
}

type RedeemCouponRequest struct {
	UserID    string `json:"userId" binding:"required"`
	IPAddress string `json:"ipAddress" binding:"required"`
}
