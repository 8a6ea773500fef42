package commands

import (
	"context"
	"strings"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/coupon"
	"card-tracker/internal/domain/event"
	"card-tracker/internal/domain/submission"
	"card-tracker/internal/infra"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/pkg/errs"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSubmissionNotFound         = errs.New("submission not found")
	ErrSubmissionAlreadyProcessed = errs.New("submission has already been processed")
	ErrCouponNotFound             = errs.New("promo code not found")
)

type SubmitSubmissionInput struct {
	QRToken    string
	Class      string
	Assignment string
	Requested  int
	PromoCode  string
	Phone      string
	Email      string
}

type SubmissionCommands interface {
	// Submit records a pending submission against the card resolved from
	// the QR token. The balance is not touched until approval.
	Submit(ctx context.Context, input SubmitSubmissionInput) (uuid.UUID, error)
	// Approve marks the submission approved and debits the card balance
	// in the same transaction. Fails without side effects when the
	// balance no longer covers the amount.
	Approve(ctx context.Context, id uuid.UUID) error
	Deny(ctx context.Context, id uuid.UUID) error
}

type submissionCommandsImpl struct {
	uow      shared.UnitOfWork
	recorder shared.EventRecorder
	clock    clock.Clock
}

func NewSubmissionCommands(uow shared.UnitOfWork, recorder shared.EventRecorder, clk clock.Clock) SubmissionCommands {
	return &submissionCommandsImpl{uow: uow, recorder: recorder, clock: clk}
}

func (c *submissionCommandsImpl) Submit(ctx context.Context, input SubmitSubmissionInput) (uuid.UUID, error) {
	reads := c.uow.CommandReads()

	cardSnap, err := reads.CardByToken(ctx, input.QRToken)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrCardNotFound
		}
		return uuid.Nil, errs.Wrap(err, "resolve card by token")
	}
	if err := card.CheckUsable(card.Status(cardSnap.Status), cardSnap.ExpiresAt, c.clock.Now()); err != nil {
		return uuid.Nil, err
	}

	var promoCode *string
	var promoDiscount int
	var couponID uuid.UUID
	if code := strings.TrimSpace(input.PromoCode); code != "" {
		couponSnap, err := reads.CouponByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrCouponNotFound
			}
			return uuid.Nil, errs.Wrap(err, "resolve promo code")
		}
		if err := coupon.ValidateUsage(couponSnap.UsesLeft); err != nil {
			return uuid.Nil, err
		}
		promoCode = &couponSnap.Code
		promoDiscount = couponSnap.Discount
		couponID = couponSnap.ID
	}

	sub, err := submission.NewSubmission(submission.NewSubmissionParams{
		CardID:        cardSnap.ID,
		CardTitle:     cardSnap.Title,
		CardRecipient: cardSnap.Recipient,
		CardBalance:   cardSnap.Amount,
		Class:         input.Class,
		Assignment:    input.Assignment,
		Requested:     input.Requested,
		PromoCode:     promoCode,
		PromoDiscount: promoDiscount,
		Contact:       submission.NewContact(input.Phone, input.Email),
	}, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var submissionID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		submissionID, err = tx.Submissions().Create(ctx, tx.DB(), sub)
		if err != nil {
			return errs.Wrap(err, "create submission")
		}

		if promoCode != nil {
			ok, err := tx.Coupons().ConsumeUse(ctx, tx.DB(), couponID)
			if err != nil {
				return errs.Wrap(err, "consume coupon use")
			}
			if !ok {
				// Raced to zero between the validation read and here.
				return coupon.ErrExhausted
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.recorder.Record(ctx, event.TypeSubmissionCreated, map[string]any{
		"submissionId": submissionID.String(),
		"cardId":       cardSnap.ID.String(),
		"cardTitle":    cardSnap.Title,
		"amount":       sub.Amount(),
		"class":        sub.Class(),
	})
	return submissionID, nil
}

func (c *submissionCommandsImpl) Approve(ctx context.Context, id uuid.UUID) error {
	var (
		cardID uuid.UUID
		amount int
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SubmissionByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSubmissionNotFound
			}
			return errs.Wrap(err, "load submission")
		}
		if submission.Status(snap.Status).Terminal() {
			return ErrSubmissionAlreadyProcessed
		}
		cardID = snap.CardID
		amount = snap.Amount

		ok, err := tx.Submissions().MarkApproved(ctx, tx.DB(), id, c.clock.Now())
		if err != nil {
			return errs.Wrap(err, "mark submission approved")
		}
		if !ok {
			return ErrSubmissionAlreadyProcessed
		}

		ok, err = tx.Cards().Debit(ctx, tx.DB(), cardID, amount)
		if err != nil {
			return errs.Wrap(err, "debit card")
		}
		if !ok {
			return submission.ErrInsufficientBalance
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.recorder.Record(ctx, event.TypeSubmissionApproved, map[string]any{
		"submissionId": id.String(),
		"cardId":       cardID.String(),
		"amount":       amount,
	})
	return nil
}

func (c *submissionCommandsImpl) Deny(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SubmissionByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSubmissionNotFound
			}
			return errs.Wrap(err, "load submission")
		}
		if submission.Status(snap.Status).Terminal() {
			return ErrSubmissionAlreadyProcessed
		}

		ok, err := tx.Submissions().MarkDenied(ctx, tx.DB(), id, c.clock.Now())
		if err != nil {
			return errs.Wrap(err, "mark submission denied")
		}
		if !ok {
			return ErrSubmissionAlreadyProcessed
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.recorder.Record(ctx, event.TypeSubmissionDenied, map[string]any{
		"submissionId": id.String(),
	})
	return nil
}
