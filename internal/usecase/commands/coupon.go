package commands

import (
	"context"
	"fmt"
	"strings"

	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/infra"
	"coupon-service/internal/infra/repository"
	"coupon-service/internal/pkg/clock"
	"coupon-service/internal/pkg/errs"
	"coupon-service/internal/usecase/queries"
	"coupon-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// CountryResolver is the external collaborator that maps a source address to
// a country code. It may be slow and it may fail; a failure is terminal for
// the redemption attempt, never substituted with a default country.
type CountryResolver interface {
	GetCountry(ctx context.Context, address string) (string, error)
}

// CountryNotAllowedError carries the resolved country for diagnostics. It is
// always marked with errs.ErrCountryNotAllowed.
type CountryNotAllowedError struct {
	Code            string
	ResolvedCountry string
}

func (e *CountryNotAllowedError) Error() string {
	return fmt.Sprintf("coupon %q not valid in country %q", e.Code, e.ResolvedCountry)
}

type CouponCommands interface {
	Create(ctx context.Context, code string, maxUses int, country string) (*queries.CouponView, error)
	Redeem(ctx context.Context, code, userID, sourceAddress string) (*queries.CouponView, error)
}

type couponCommandsImpl struct {
	couponRepo shared.CouponRepository
	resolver   CountryResolver
	uow        shared.UnitOfWork
	clock      clock.Clock
}

func NewCouponCommands(
	couponRepo shared.CouponRepository,
	resolver CountryResolver,
	uow shared.UnitOfWork,
	clock clock.Clock,
) CouponCommands {
	return &couponCommandsImpl{
		couponRepo: couponRepo,
		resolver:   resolver,
		uow:        uow,
		clock:      clock,
	}
}

// Create normalizes the code and country, rejects duplicates, and persists a
// fresh coupon. The existence check is a fast path only: the unique index on
// upper(code) is the real guarantee, so a racing insert still surfaces as
// ErrCouponCodeExists.
func (c *couponCommandsImpl) Create(ctx context.Context, code string, maxUses int, country string) (*queries.CouponView, error) {
	entity, err := coupon.New(uuid.New(), code, maxUses, country, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	exists, err := c.couponRepo.ExistsByCode(ctx, c.uow.DB(), entity.Code().String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, errs.Mark(errs.New("code taken: "+entity.Code().String()), errs.ErrCouponCodeExists)
	}

	if err := c.couponRepo.Insert(ctx, c.uow.DB(), entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrCouponCodeExists)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return viewOf(entity), nil
}

// Redeem runs the validation pipeline inside one exclusive scope on the
// coupon row: lock, limit, geography, prior use, then commit. The order is
// part of the contract; callers observe it through which error they get when
// several conditions fail at once.
func (c *couponCommandsImpl) Redeem(ctx context.Context, code, userID, sourceAddress string) (*queries.CouponView, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errs.Mark(coupon.ErrEmptyUserID, errs.ErrDomainValidation)
	}

	var view *queries.CouponView
	err = c.uow.Within(ctx, func(ctx context.Context, tx repository.DBTX) error {
		entity, err := c.couponRepo.FindByCodeForUpdate(ctx, tx, normalized.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCouponNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// Checked before the resolver call: an exhausted coupon never
		// triggers a network lookup.
		if entity.IsExhausted() {
			return errs.Mark(errs.New("limit reached: "+entity.Code().String()), errs.ErrUseLimitExceeded)
		}

		resolved, err := c.resolver.GetCountry(ctx, sourceAddress)
		if err != nil {
			return errs.Mark(err, errs.ErrGeoLookupFailed)
		}

		if !entity.AllowsCountry(resolved) {
			return errs.Mark(&CountryNotAllowedError{
				Code:            entity.Code().String(),
				ResolvedCountry: resolved,
			}, errs.ErrCountryNotAllowed)
		}

		used, err := c.couponRepo.ExistsUsage(ctx, tx, entity.ID(), userID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if used {
			return errs.Mark(errs.New("user "+userID+" already used "+entity.Code().String()), errs.ErrCouponAlreadyUsed)
		}

		if err := entity.Use(); err != nil {
			return errs.Mark(err, errs.ErrUseLimitExceeded)
		}

		if err := c.couponRepo.SaveUses(ctx, tx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		usage, err := coupon.NewUsage(entity.ID(), userID, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		// A duplicate here means the lock discipline was bypassed; that is
		// an infrastructure failure, not a domain rejection.
		if err := c.couponRepo.InsertUsage(ctx, tx, usage); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		view = viewOf(entity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func viewOf(entity *coupon.Coupon) *queries.CouponView {
	return &queries.CouponView{
		Code:        entity.Code().String(),
		CurrentUses: entity.CurrentUses(),
		MaxUses:     entity.MaxUses(),
		Country:     entity.Country().String(),
		CreatedAt:   entity.CreatedAt(),
	}
}
