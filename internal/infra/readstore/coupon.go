package readstore

import (
	"context"

	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"
	"card-tracker/internal/usecase/queries"
)

type CouponReadStore struct {
	db db.Executor
}

func NewCouponReadStore(db db.Executor) *CouponReadStore {
	return &CouponReadStore{db: db}
}

func (s *CouponReadStore) ListAll(ctx context.Context) ([]*queries.CouponView, error) {
	const q = `SELECT id, code, discount, uses_left, created_at FROM coupons ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	views := make([]*queries.CouponView, 0)
	for rows.Next() {
		var v queries.CouponView
		if err := rows.Scan(&v.ID, &v.Code, &v.Discount, &v.UsesLeft, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}
	return views, nil
}
