package commands

import (
	"context"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/cardrequest"
	"card-tracker/internal/domain/event"
	"card-tracker/internal/domain/submission"
	"card-tracker/internal/infra"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/pkg/errs"
	"card-tracker/internal/pkg/qrtoken"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCardRequestNotFound         = errs.New("card request not found")
	ErrCardRequestAlreadyProcessed = errs.New("card request has already been processed")
)

type SubmitCardRequestInput struct {
	Name   string
	Class  string
	Phone  string
	Email  string
	Reason string
}

type CardRequestCommands interface {
	Submit(ctx context.Context, input SubmitCardRequestInput) (uuid.UUID, error)
	// Approve mints a new card for the requester and links it to the
	// request. Returns the new card's id.
	Approve(ctx context.Context, id uuid.UUID, amount int) (uuid.UUID, error)
	Deny(ctx context.Context, id uuid.UUID) error
}

type cardRequestCommandsImpl struct {
	uow      shared.UnitOfWork
	recorder shared.EventRecorder
	clock    clock.Clock
}

func NewCardRequestCommands(uow shared.UnitOfWork, recorder shared.EventRecorder, clk clock.Clock) CardRequestCommands {
	return &cardRequestCommandsImpl{uow: uow, recorder: recorder, clock: clk}
}

func (c *cardRequestCommandsImpl) Submit(ctx context.Context, input SubmitCardRequestInput) (uuid.UUID, error) {
	req, err := cardrequest.NewCardRequest(
		input.Name,
		input.Class,
		submission.NewContact(input.Phone, input.Email),
		input.Reason,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, err
	}

	var requestID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		requestID, err = tx.CardRequests().Create(ctx, tx.DB(), req)
		return err
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "create card request")
	}

	c.recorder.Record(ctx, event.TypeCardRequestCreated, map[string]any{
		"requestId": requestID.String(),
		"name":      req.Name(),
		"class":     req.Class(),
	})
	return requestID, nil
}

func (c *cardRequestCommandsImpl) Approve(ctx context.Context, id uuid.UUID, amount int) (uuid.UUID, error) {
	token, err := qrtoken.New()
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "generate qr token")
	}

	var (
		cardID uuid.UUID
		name   string
		title  string
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CardRequestByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCardRequestNotFound
			}
			return errs.Wrap(err, "load card request")
		}
		if snap.Status != cardrequest.StatusPending.String() {
			return ErrCardRequestAlreadyProcessed
		}
		name = snap.Name
		title = "Card for " + name

		newCard, err := card.NewCard(title, name, amount, nil, token, c.clock.Now())
		if err != nil {
			return err
		}

		cardID, err = tx.Cards().Create(ctx, tx.DB(), newCard)
		if err != nil {
			return errs.Wrap(err, "create card")
		}

		ok, err := tx.CardRequests().MarkApproved(ctx, tx.DB(), id, cardID, c.clock.Now())
		if err != nil {
			return errs.Wrap(err, "mark request approved")
		}
		if !ok {
			return ErrCardRequestAlreadyProcessed
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.recorder.Record(ctx, event.TypeCardCreated, map[string]any{
		"cardId": cardID.String(),
		"title":  title,
		"amount": amount,
	})
	c.recorder.Record(ctx, event.TypeCardRequestApproved, map[string]any{
		"requestId": id.String(),
		"cardId":    cardID.String(),
		"name":      name,
	})
	return cardID, nil
}

func (c *cardRequestCommandsImpl) Deny(ctx context.Context, id uuid.UUID) error {
	var name string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CardRequestByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCardRequestNotFound
			}
			return errs.Wrap(err, "load card request")
		}
		if snap.Status != cardrequest.StatusPending.String() {
			return ErrCardRequestAlreadyProcessed
		}
		name = snap.Name

		ok, err := tx.CardRequests().MarkDenied(ctx, tx.DB(), id, c.clock.Now())
		if err != nil {
			return errs.Wrap(err, "mark request denied")
		}
		if !ok {
			return ErrCardRequestAlreadyProcessed
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.recorder.Record(ctx, event.TypeCardRequestDenied, map[string]any{
		"requestId": id.String(),
		"name":      name,
	})
	return nil
}
