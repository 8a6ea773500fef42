package queries

import (
	"context"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/infra"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCardNotFound = errs.New("card not found")

type CardReadStore interface {
	ListAll(ctx context.Context) ([]*CardView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CardView, error)
	FindByToken(ctx context.Context, token string) (*CardView, error)
}

type CardQueries interface {
	List(ctx context.Context) ([]*CardView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CardView, error)
	// ResolveByToken is the redemption entry point: the only way an end
	// user reaches the submission form. Revoked and expired cards fail
	// with distinct errors so the UI can say why.
	ResolveByToken(ctx context.Context, token string) (*CardView, error)
}

type cardQueriesImpl struct {
	readStore CardReadStore
	clock     clock.Clock
}

func NewCardQueries(readStore CardReadStore, clk clock.Clock) CardQueries {
	return &cardQueriesImpl{readStore: readStore, clock: clk}
}

func (q *cardQueriesImpl) List(ctx context.Context) ([]*CardView, error) {
	return q.readStore.ListAll(ctx)
}

func (q *cardQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CardView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *cardQueriesImpl) ResolveByToken(ctx context.Context, token string) (*CardView, error) {
	view, err := q.readStore.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	if err := card.CheckUsable(card.Status(view.Status), view.ExpiresAt, q.clock.Now()); err != nil {
		return nil, err
	}
	return view, nil
}
