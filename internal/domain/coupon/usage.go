package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyUserID = errors.New("user id must not be blank")

// Usage records one successful redemption. At most one exists per
// (coupon, user) pair; it is immutable once created.
type Usage struct {
	couponID uuid.UUID
	userID   string
	usedAt   time.Time
}

func NewUsage(couponID uuid.UUID, userID string, usedAt time.Time) (*Usage, error) {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return nil, ErrEmptyUserID
	}
	return &Usage{
		couponID: couponID,
		userID:   trimmed,
		usedAt:   usedAt,
	}, nil
}

func (u *Usage) CouponID() uuid.UUID { return u.couponID }
func (u *Usage) UserID() string      { return u.userID }
func (u *Usage) UsedAt() time.Time   { return u.usedAt }
