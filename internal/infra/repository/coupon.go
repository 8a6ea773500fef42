package repository

import (
	"context"

	"card-tracker/internal/domain/coupon"
	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"

	"github.com/google/uuid"
)

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) Create(ctx context.Context, tx db.Executor, c *coupon.Coupon) (uuid.UUID, error) {
	const q = `
		INSERT INTO coupons (id, code, discount, uses_left, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		c.ID(),
		c.Code().String(),
		c.Discount(),
		c.UsesLeft(),
		c.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert coupon", err)
	}
	return id, nil
}

func (r *CouponRepository) Delete(ctx context.Context, tx db.Executor, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM coupons WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete coupon", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CouponRepository) ConsumeUse(ctx context.Context, tx db.Executor, id uuid.UUID) (bool, error) {
	// An exhausted coupon stays on record; it is rejected on application,
	// never auto-deleted.
	const q = `UPDATE coupons SET uses_left = uses_left - 1 WHERE id = $1 AND uses_left > 0`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume coupon use", err)
	}
	return tag.RowsAffected() > 0, nil
}
