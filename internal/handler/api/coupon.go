package api

import (
	"errors"
	"net/http"

	reqdto "coupon-service/internal/handler/dto/request"
	resdto "coupon-service/internal/handler/dto/response"
	"coupon-service/internal/handler/httperr"
	"coupon-service/internal/pkg/errs"
	"coupon-service/internal/usecase/commands"
	"coupon-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(couponCommands commands.CouponCommands, couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary Create coupon
// @Description Create a promotional coupon with a usage limit and country restriction
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCouponRequest true "Coupon definition"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "ValidationError", "Invalid request format", nil)
		return
	}

	view, err := h.couponCommands.Create(c.Request.Context(), req.Code, req.MaxUses, req.Country)
	if err != nil {
		h.abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Redeem coupon
// @Description Redeem a coupon once per user, restricted to the coupon's country
// @Tags coupons
// @Accept json
// @Produce json
// @Param code path string true "Coupon code"
// @Param request body reqdto.RedeemCouponRequest true "Redemption request"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /coupons/{code}/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "ValidationError", "Invalid request format", nil)
		return
	}

	view, err := h.couponCommands.Redeem(c.Request.Context(), c.Param("code"), req.UserID, req.IPAddress)
	if err != nil {
		h.abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Get coupon
// @Description Fetch a coupon's current state by exact code
// @Tags coupons
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /coupons/{code} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	view, err := h.couponQueries.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

func (h *CouponHandler) abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "ValidationError", "Invalid coupon input", nil)
	case errors.Is(err, errs.ErrCouponCodeExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "CouponCodeExists", "Coupon code already exists", nil)
	case errors.Is(err, errs.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "CouponNotFound", "Coupon not found", nil)
	case errors.Is(err, errs.ErrUseLimitExceeded):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "CouponUseLimitExceeded", "Coupon use limit exceeded", nil)
	case errors.Is(err, errs.ErrCountryNotAllowed):
		var mismatch *commands.CountryNotAllowedError
		detail := any(nil)
		if errors.As(err, &mismatch) {
			detail = gin.H{"resolvedCountry": mismatch.ResolvedCountry}
		}
		httperr.AbortWithError(c, http.StatusForbidden, err, "CouponCountryNotAllowed", "Coupon not valid in your country", detail)
	case errors.Is(err, errs.ErrCouponAlreadyUsed):
		httperr.AbortWithError(c, http.StatusForbidden, err, "CouponAlreadyUsed", "Coupon already used by this user", nil)
	case errors.Is(err, errs.ErrGeoLookupFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "GeoIpLookupFailed", "Could not resolve country for address", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "InternalError", "Internal server error", nil)
	}
}
