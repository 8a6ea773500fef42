//go:build unit

package commands_test

import (
	"context"
	"time"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/cardrequest"
	"card-tracker/internal/domain/coupon"
	"card-tracker/internal/domain/event"
	"card-tracker/internal/domain/submission"
	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory UnitOfWork backed by snapshot maps. Within runs the callback
// directly; there is no rollback, so failure-path tests assert the
// returned error rather than post-transaction state.

type fakeStore struct {
	cards        map[uuid.UUID]*shared.CardSnapshot
	coupons      map[uuid.UUID]*shared.CouponSnapshot
	submissions  map[uuid.UUID]*shared.SubmissionSnapshot
	cardRequests map[uuid.UUID]*shared.CardRequestSnapshot
	config       map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cards:        make(map[uuid.UUID]*shared.CardSnapshot),
		coupons:      make(map[uuid.UUID]*shared.CouponSnapshot),
		submissions:  make(map[uuid.UUID]*shared.SubmissionSnapshot),
		cardRequests: make(map[uuid.UUID]*shared.CardRequestSnapshot),
		config:       make(map[string]string),
	}
}

func (s *fakeStore) addCard(snap shared.CardSnapshot) {
	s.cards[snap.ID] = &snap
}

func (s *fakeStore) addCoupon(snap shared.CouponSnapshot) {
	s.coupons[snap.ID] = &snap
}

func (s *fakeStore) addSubmission(snap shared.SubmissionSnapshot) {
	s.submissions[snap.ID] = &snap
}

func (s *fakeStore) addCardRequest(snap shared.CardRequestSnapshot) {
	s.cardRequests[snap.ID] = &snap
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Cards() shared.CardRepository               { return &fakeCardRepo{store: t.store} }
func (t *fakeTx) CardRequests() shared.CardRequestRepository { return &fakeCardRequestRepo{store: t.store} }
func (t *fakeTx) Submissions() shared.SubmissionRepository   { return &fakeSubmissionRepo{store: t.store} }
func (t *fakeTx) Coupons() shared.CouponRepository           { return &fakeCouponRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.Executor                            { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) CardByID(_ context.Context, id uuid.UUID) (*shared.CardSnapshot, error) {
	snap, ok := r.store.cards[id]
	if !ok {
		return nil, infra.WrapRepoErr("card not found", nil, infra.KindNotFound)
	}
	copied := *snap
	return &copied, nil
}

func (r *fakeReads) CardByToken(_ context.Context, token string) (*shared.CardSnapshot, error) {
	for _, snap := range r.store.cards {
		if snap.QRToken == token {
			copied := *snap
			return &copied, nil
		}
	}
	return nil, infra.WrapRepoErr("card not found", nil, infra.KindNotFound)
}

func (r *fakeReads) CouponByCode(_ context.Context, code string) (*shared.CouponSnapshot, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	for _, snap := range r.store.coupons {
		if snap.Code == normalized.String() {
			copied := *snap
			return &copied, nil
		}
	}
	return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
}

func (r *fakeReads) SubmissionByID(_ context.Context, id uuid.UUID) (*shared.SubmissionSnapshot, error) {
	snap, ok := r.store.submissions[id]
	if !ok {
		return nil, infra.WrapRepoErr("submission not found", nil, infra.KindNotFound)
	}
	copied := *snap
	return &copied, nil
}

func (r *fakeReads) CardRequestByID(_ context.Context, id uuid.UUID) (*shared.CardRequestSnapshot, error) {
	snap, ok := r.store.cardRequests[id]
	if !ok {
		return nil, infra.WrapRepoErr("card request not found", nil, infra.KindNotFound)
	}
	copied := *snap
	return &copied, nil
}

func (r *fakeReads) ConfigValue(_ context.Context, key string) (string, error) {
	value, ok := r.store.config[key]
	if !ok {
		return "", infra.WrapRepoErr("config key not found", nil, infra.KindNotFound)
	}
	return value, nil
}

type fakeCardRepo struct {
	store *fakeStore
}

func (r *fakeCardRepo) Create(_ context.Context, _ db.Executor, c *card.Card) (uuid.UUID, error) {
	r.store.cards[c.ID()] = &shared.CardSnapshot{
		ID:        c.ID(),
		Title:     c.Title().String(),
		Recipient: c.Recipient().String(),
		Amount:    c.Amount().Int(),
		QRToken:   c.QRToken(),
		Status:    c.Status().String(),
		ExpiresAt: c.ExpiresAt(),
		CreatedAt: c.CreatedAt(),
	}
	return c.ID(), nil
}

func (r *fakeCardRepo) MarkRevoked(_ context.Context, _ db.Executor, id uuid.UUID) (bool, error) {
	snap, ok := r.store.cards[id]
	if !ok || snap.Status != card.StatusActive.String() {
		return false, nil
	}
	snap.Status = card.StatusRevoked.String()
	return true, nil
}

func (r *fakeCardRepo) DeleteRevoked(_ context.Context, _ db.Executor, id uuid.UUID) (bool, error) {
	snap, ok := r.store.cards[id]
	if !ok || snap.Status != card.StatusRevoked.String() {
		return false, nil
	}
	delete(r.store.cards, id)
	return true, nil
}

func (r *fakeCardRepo) Debit(_ context.Context, _ db.Executor, id uuid.UUID, amount int) (bool, error) {
	snap, ok := r.store.cards[id]
	if !ok || snap.Amount < amount {
		return false, nil
	}
	snap.Amount -= amount
	return true, nil
}

type fakeCardRequestRepo struct {
	store *fakeStore
}

func (r *fakeCardRequestRepo) Create(_ context.Context, _ db.Executor, req *cardrequest.CardRequest) (uuid.UUID, error) {
	r.store.cardRequests[req.ID()] = &shared.CardRequestSnapshot{
		ID:     req.ID(),
		Name:   req.Name(),
		Status: req.Status().String(),
	}
	return req.ID(), nil
}

func (r *fakeCardRequestRepo) MarkApproved(_ context.Context, _ db.Executor, id, _ uuid.UUID, _ time.Time) (bool, error) {
	snap, ok := r.store.cardRequests[id]
	if !ok || snap.Status != cardrequest.StatusPending.String() {
		return false, nil
	}
	snap.Status = cardrequest.StatusApproved.String()
	return true, nil
}

func (r *fakeCardRequestRepo) MarkDenied(_ context.Context, _ db.Executor, id uuid.UUID, _ time.Time) (bool, error) {
	snap, ok := r.store.cardRequests[id]
	if !ok || snap.Status != cardrequest.StatusPending.String() {
		return false, nil
	}
	snap.Status = cardrequest.StatusDenied.String()
	return true, nil
}

type fakeSubmissionRepo struct {
	store *fakeStore
}

func (r *fakeSubmissionRepo) Create(_ context.Context, _ db.Executor, s *submission.Submission) (uuid.UUID, error) {
	r.store.submissions[s.ID()] = &shared.SubmissionSnapshot{
		ID:     s.ID(),
		CardID: s.CardID(),
		Amount: s.Amount(),
		Status: s.Status().String(),
	}
	return s.ID(), nil
}

func (r *fakeSubmissionRepo) MarkApproved(_ context.Context, _ db.Executor, id uuid.UUID, _ time.Time) (bool, error) {
	snap, ok := r.store.submissions[id]
	if !ok || snap.Status != submission.StatusPending.String() {
		return false, nil
	}
	snap.Status = submission.StatusApproved.String()
	return true, nil
}

func (r *fakeSubmissionRepo) MarkDenied(_ context.Context, _ db.Executor, id uuid.UUID, _ time.Time) (bool, error) {
	snap, ok := r.store.submissions[id]
	if !ok || snap.Status != submission.StatusPending.String() {
		return false, nil
	}
	snap.Status = submission.StatusDenied.String()
	return true, nil
}

type fakeCouponRepo struct {
	store *fakeStore
}

func (r *fakeCouponRepo) Create(_ context.Context, _ db.Executor, c *coupon.Coupon) (uuid.UUID, error) {
	for _, snap := range r.store.coupons {
		if snap.Code == c.Code().String() {
			return uuid.Nil, infra.WrapRepoErr("coupon code already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.store.coupons[c.ID()] = &shared.CouponSnapshot{
		ID:       c.ID(),
		Code:     c.Code().String(),
		Discount: c.Discount(),
		UsesLeft: c.UsesLeft(),
	}
	return c.ID(), nil
}

func (r *fakeCouponRepo) Delete(_ context.Context, _ db.Executor, id uuid.UUID) (bool, error) {
	if _, ok := r.store.coupons[id]; !ok {
		return false, nil
	}
	delete(r.store.coupons, id)
	return true, nil
}

func (r *fakeCouponRepo) ConsumeUse(_ context.Context, _ db.Executor, id uuid.UUID) (bool, error) {
	snap, ok := r.store.coupons[id]
	if !ok || snap.UsesLeft <= 0 {
		return false, nil
	}
	snap.UsesLeft--
	return true, nil
}

type recordedEvent struct {
	Type event.Type
	Data map[string]any
}

type fakeRecorder struct {
	events []recordedEvent
}

func (r *fakeRecorder) Record(_ context.Context, t event.Type, data map[string]any) {
	r.events = append(r.events, recordedEvent{Type: t, Data: data})
}

func (r *fakeRecorder) types() []event.Type {
	out := make([]event.Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
