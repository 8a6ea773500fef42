package queries

import (
	"context"

	"card-tracker/internal/infra"
	"card-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCardRequestNotFound = errs.New("card request not found")

type CardRequestReadStore interface {
	ListAll(ctx context.Context) ([]*CardRequestView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CardRequestView, error)
}

type CardRequestQueries interface {
	List(ctx context.Context) ([]*CardRequestView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CardRequestView, error)
}

type cardRequestQueriesImpl struct {
	readStore CardRequestReadStore
}

func NewCardRequestQueries(readStore CardRequestReadStore) CardRequestQueries {
	return &cardRequestQueriesImpl{readStore: readStore}
}

func (q *cardRequestQueriesImpl) List(ctx context.Context) ([]*CardRequestView, error) {
	return q.readStore.ListAll(ctx)
}

func (q *cardRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CardRequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCardRequestNotFound
		}
		return nil, err
	}
	return view, nil
}
