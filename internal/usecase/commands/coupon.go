package commands

import (
	"context"

	"card-tracker/internal/domain/coupon"
	"card-tracker/internal/infra"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/pkg/errs"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateCouponCode = errs.New("coupon code already exists")

type CreateCouponInput struct {
	Code     string
	Discount int
	Uses     int
}

type CouponCommands interface {
	Create(ctx context.Context, input CreateCouponInput) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Validate previews a promo code without consuming a use: the
	// submission form calls it to show the discount before submit.
	Validate(ctx context.Context, code string) (*shared.CouponSnapshot, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clk}
}

func (c *couponCommandsImpl) Create(ctx context.Context, input CreateCouponInput) (uuid.UUID, error) {
	newCoupon, err := coupon.NewCoupon(input.Code, input.Discount, input.Uses, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var couponID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		couponID, err = tx.Coupons().Create(ctx, tx.DB(), newCoupon)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCouponCode
		}
		return uuid.Nil, errs.Wrap(err, "create coupon")
	}
	return couponID, nil
}

func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Coupons().Delete(ctx, tx.DB(), id)
		if err != nil {
			return errs.Wrap(err, "delete coupon")
		}
		if !ok {
			return ErrCouponNotFound
		}
		return nil
	})
}

func (c *couponCommandsImpl) Validate(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	snap, err := c.uow.CommandReads().CouponByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "resolve promo code")
	}
	if err := coupon.ValidateUsage(snap.UsesLeft); err != nil {
		return nil, err
	}
	return snap, nil
}
