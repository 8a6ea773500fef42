package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"
	"card-tracker/internal/infra/repository"
	"card-tracker/internal/pkg/errs"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	if err := fn(ctx, &pgxTxWrapper{db: pgxTx}); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{db: u.pool}
}

type pgxTxWrapper struct {
	db db.Executor
}

func (t *pgxTxWrapper) Cards() shared.CardRepository {
	return repository.NewCardRepository()
}

func (t *pgxTxWrapper) CardRequests() shared.CardRequestRepository {
	return repository.NewCardRequestRepository()
}

func (t *pgxTxWrapper) Submissions() shared.SubmissionRepository {
	return repository.NewSubmissionRepository()
}

func (t *pgxTxWrapper) Coupons() shared.CouponRepository {
	return repository.NewCouponRepository()
}

func (t *pgxTxWrapper) Reads() shared.CommandReads {
	return &commandReads{db: t.db}
}

func (t *pgxTxWrapper) DB() db.Executor {
	return t.db
}

type commandReads struct {
	db db.Executor
}

func (r *commandReads) CardByID(ctx context.Context, id uuid.UUID) (*shared.CardSnapshot, error) {
	const q = `
		SELECT id, title, recipient, amount, qr_token, status, expires_at, created_at
		FROM cards WHERE id = $1`

	return scanCardSnapshot(r.db.QueryRow(ctx, q, id), "card not found by id")
}

func (r *commandReads) CardByToken(ctx context.Context, token string) (*shared.CardSnapshot, error) {
	const q = `
		SELECT id, title, recipient, amount, qr_token, status, expires_at, created_at
		FROM cards WHERE qr_token = $1`

	return scanCardSnapshot(r.db.QueryRow(ctx, q, token), "card not found by token")
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	const q = `SELECT id, code, discount, uses_left FROM coupons WHERE code = upper($1)`

	var snap shared.CouponSnapshot
	err := r.db.QueryRow(ctx, q, code).Scan(&snap.ID, &snap.Code, &snap.Discount, &snap.UsesLeft)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return &snap, nil
}

func (r *commandReads) SubmissionByID(ctx context.Context, id uuid.UUID) (*shared.SubmissionSnapshot, error) {
	const q = `SELECT id, card_id, amount_requested, status FROM submissions WHERE id = $1`

	var snap shared.SubmissionSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.CardID, &snap.Amount, &snap.Status)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("submission not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find submission by id", err)
	}
	return &snap, nil
}

func (r *commandReads) CardRequestByID(ctx context.Context, id uuid.UUID) (*shared.CardRequestSnapshot, error) {
	const q = `SELECT id, name, status FROM card_requests WHERE id = $1`

	var snap shared.CardRequestSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Name, &snap.Status)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("card request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find card request by id", err)
	}
	return &snap, nil
}

func (r *commandReads) ConfigValue(ctx context.Context, key string) (string, error) {
	const q = `SELECT value FROM app_config WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, q, key).Scan(&value)
	if err != nil {
		if infra.IsNoRows(err) {
			return "", infra.WrapRepoErr("config key not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read config value", err)
	}
	return value, nil
}

func scanCardSnapshot(row pgx.Row, notFoundMsg string) (*shared.CardSnapshot, error) {
	var snap shared.CardSnapshot
	var expiresAt *time.Time

	err := row.Scan(
		&snap.ID,
		&snap.Title,
		&snap.Recipient,
		&snap.Amount,
		&snap.QRToken,
		&snap.Status,
		&expiresAt,
		&snap.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan card", err)
	}
	snap.ExpiresAt = expiresAt
	return &snap, nil
}
