package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyCouponCode   = errors.New("coupon code must not be blank")
	ErrInvalidCountry    = errors.New("country must be a 2-letter ISO code")
	ErrInvalidUsageLimit = errors.New("usage limit must be positive")
)

var countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// Code is the normalized coupon identity: trimmed and upper-cased once at
// construction. The normalized form is the only form ever stored or compared.
type Code string

func NewCode(raw string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return Code(""), ErrEmptyCouponCode
	}
	return Code(normalized), nil
}

func (c Code) String() string {
	return string(c)
}

type Country string

func NewCountry(raw string) (Country, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !countryCodeRegex.MatchString(normalized) {
		return Country(""), ErrInvalidCountry
	}
	return Country(normalized), nil
}

func (c Country) String() string {
	return string(c)
}

// Matches compares country codes case-insensitively.
func (c Country) Matches(resolved string) bool {
	return strings.EqualFold(string(c), resolved)
}

type UsageLimit int

func NewUsageLimit(maxUses int) (UsageLimit, error) {
	if maxUses <= 0 {
		return UsageLimit(0), ErrInvalidUsageLimit
	}
	return UsageLimit(maxUses), nil
}

func (l UsageLimit) Value() int {
	return int(l)
}
