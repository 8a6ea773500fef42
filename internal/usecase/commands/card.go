package commands

import (
	"context"
	"time"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/event"
	"card-tracker/internal/infra"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/pkg/errs"
	"card-tracker/internal/pkg/qrtoken"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCardNotFound       = errs.New("card not found")
	ErrCardAlreadyRevoked = errs.New("card is already revoked")
	ErrCardNotRevoked     = errs.New("only revoked cards can be deleted")
)

type CreateCardInput struct {
	Title     string
	Recipient string
	Amount    int
	ExpiresAt *time.Time
}

type CardCommands interface {
	Create(ctx context.Context, input CreateCardInput) (uuid.UUID, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	// Delete permanently removes a card. Only revoked cards are
	// deletable; revoke first, then delete.
	Delete(ctx context.Context, id uuid.UUID) error
}

type cardCommandsImpl struct {
	uow      shared.UnitOfWork
	recorder shared.EventRecorder
	clock    clock.Clock
}

func NewCardCommands(uow shared.UnitOfWork, recorder shared.EventRecorder, clk clock.Clock) CardCommands {
	return &cardCommandsImpl{uow: uow, recorder: recorder, clock: clk}
}

func (c *cardCommandsImpl) Create(ctx context.Context, input CreateCardInput) (uuid.UUID, error) {
	token, err := qrtoken.New()
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "generate qr token")
	}

	newCard, err := card.NewCard(input.Title, input.Recipient, input.Amount, input.ExpiresAt, token, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var cardID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cardID, err = tx.Cards().Create(ctx, tx.DB(), newCard)
		return err
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "create card")
	}

	c.recorder.Record(ctx, event.TypeCardCreated, map[string]any{
		"cardId": cardID.String(),
		"title":  newCard.Title().String(),
		"amount": newCard.Amount().Int(),
	})
	return cardID, nil
}

func (c *cardCommandsImpl) Revoke(ctx context.Context, id uuid.UUID) error {
	var title string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CardByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCardNotFound
			}
			return errs.Wrap(err, "load card")
		}
		if snap.Status == card.StatusRevoked.String() {
			return ErrCardAlreadyRevoked
		}
		title = snap.Title

		ok, err := tx.Cards().MarkRevoked(ctx, tx.DB(), id)
		if err != nil {
			return errs.Wrap(err, "revoke card")
		}
		if !ok {
			return ErrCardAlreadyRevoked
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.recorder.Record(ctx, event.TypeCardRevoked, map[string]any{
		"cardId": id.String(),
		"title":  title,
	})
	return nil
}

func (c *cardCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var title string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CardByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCardNotFound
			}
			return errs.Wrap(err, "load card")
		}
		if snap.Status != card.StatusRevoked.String() {
			return ErrCardNotRevoked
		}
		title = snap.Title

		ok, err := tx.Cards().DeleteRevoked(ctx, tx.DB(), id)
		if err != nil {
			return errs.Wrap(err, "delete card")
		}
		if !ok {
			return ErrCardNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.recorder.Record(ctx, event.TypeCardDeleted, map[string]any{
		"cardId": id.String(),
		"title":  title,
	})
	return nil
}
