package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUsageLimitReached = errors.New("coupon usage limit reached")

// Coupon is the aggregate for one promotional code. currentUses never
// decreases and never exceeds the limit; both invariants are enforced here
// and backed by a check constraint in storage.
type Coupon struct {
	id          uuid.UUID
	code        Code
	limit       UsageLimit
	currentUses int
	country     Country
	createdAt   time.Time
}

// New normalizes and validates raw input and returns a fresh, unused coupon.
// Normalization happens here, before any storage call, so the invariant holds
// for the entire observable lifetime of the entity.
func New(id uuid.UUID, rawCode string, maxUses int, rawCountry string, now time.Time) (*Coupon, error) {
	code, err := NewCode(rawCode)
	if err != nil {
		return nil, err
	}

	limit, err := NewUsageLimit(maxUses)
	if err != nil {
		return nil, err
	}

	country, err := NewCountry(rawCountry)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:          id,
		code:        code,
		limit:       limit,
		currentUses: 0,
		country:     country,
		createdAt:   now,
	}, nil
}

// Restore rebuilds a coupon from its persisted state. The stored form is
// already normalized, so no validation is repeated.
func Restore(id uuid.UUID, code string, maxUses, currentUses int, country string, createdAt time.Time) *Coupon {
	return &Coupon{
		id:          id,
		code:        Code(code),
		limit:       UsageLimit(maxUses),
		currentUses: currentUses,
		country:     Country(country),
		createdAt:   createdAt,
	}
}

func (c *Coupon) IsExhausted() bool {
	return c.currentUses >= c.limit.Value()
}

// Use consumes one redemption. It is the only mutation the aggregate allows.
func (c *Coupon) Use() error {
	if c.IsExhausted() {
		return ErrUsageLimitReached
	}
	c.currentUses++
	return nil
}

func (c *Coupon) AllowsCountry(resolved string) bool {
	return c.country.Matches(resolved)
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Code() Code           { return c.code }
func (c *Coupon) MaxUses() int         { return c.limit.Value() }
func (c *Coupon) CurrentUses() int     { return c.currentUses }
func (c *Coupon) Country() Country     { return c.country }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
