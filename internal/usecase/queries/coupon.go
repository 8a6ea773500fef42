package queries

import "context"

type CouponReadStore interface {
	ListAll(ctx context.Context) ([]*CouponView, error)
}

type CouponQueries interface {
	List(ctx context.Context) ([]*CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) List(ctx context.Context) ([]*CouponView, error) {
	return q.readStore.ListAll(ctx)
}
