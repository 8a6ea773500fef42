package components

import (
	"card-tracker/internal/infra/db"
	"card-tracker/internal/infra/readstore"
	"card-tracker/internal/infra/repository"
	"card-tracker/internal/infra/uow"
	"card-tracker/internal/usecase/queries"
	"card-tracker/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewExecutor,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Audit trail
		fx.Annotate(
			repository.NewEventRecorder,
			fx.As(new(shared.EventRecorder)),
		),
		// Read stores
		fx.Annotate(
			readstore.NewCardReadStore,
			fx.As(new(queries.CardReadStore)),
		),
		fx.Annotate(
			readstore.NewCardRequestReadStore,
			fx.As(new(queries.CardRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewSubmissionReadStore,
			fx.As(new(queries.SubmissionReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
	),
)

func NewExecutor(pool *pgxpool.Pool) db.Executor {
	return pool
}
