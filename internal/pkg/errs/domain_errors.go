package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Coupon errors
	ErrCouponCodeExists  = errors.New("coupon code already exists")
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrUseLimitExceeded  = errors.New("coupon use limit exceeded")
	ErrCountryNotAllowed = errors.New("coupon not allowed in resolved country")
	ErrCouponAlreadyUsed = errors.New("coupon already used by user")
	ErrGeoLookupFailed   = errors.New("geo lookup failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
