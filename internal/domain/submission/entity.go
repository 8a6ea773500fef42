package submission

import (
	"time"

	"card-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyClass          = errs.New("class is empty")
	ErrEmptyAssignmentType = errs.New("assignment type is empty")
	ErrInvalidAmount       = errs.New("requested amount must be at least 1")
	ErrInsufficientBalance = errs.New("requested amount exceeds card balance")
)

type Submission struct {
	id            uuid.UUID
	cardID        uuid.UUID
	cardTitle     string
	cardRecipient string
	class         string
	assignment    string
	amount        int // post-discount amount, the one debited on approval
	originalAmt   int
	promoCode     *string
	promoDiscount int
	contact       Contact
	status        Status
	createdAt     time.Time
}

type NewSubmissionParams struct {
	CardID        uuid.UUID
	CardTitle     string
	CardRecipient string
	CardBalance   int
	Class         string
	Assignment    string
	Requested     int
	PromoCode     *string
	PromoDiscount int
	Contact       Contact
}

func NewSubmission(p NewSubmissionParams, now time.Time) (*Submission, error) {
	if p.Class == "" {
		return nil, ErrEmptyClass
	}
	if p.Assignment == "" {
		return nil, ErrEmptyAssignmentType
	}
	if p.Requested < 1 {
		return nil, ErrInvalidAmount
	}
	if err := p.Contact.Validate(); err != nil {
		return nil, err
	}

	final := FinalAmount(p.Requested, p.PromoDiscount)
	if final > p.CardBalance {
		return nil, ErrInsufficientBalance
	}

	return &Submission{
		id:            uuid.New(),
		cardID:        p.CardID,
		cardTitle:     p.CardTitle,
		cardRecipient: p.CardRecipient,
		class:         p.Class,
		assignment:    p.Assignment,
		amount:        final,
		originalAmt:   p.Requested,
		promoCode:     p.PromoCode,
		promoDiscount: p.PromoDiscount,
		contact:       p.Contact,
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

// FinalAmount applies a promo discount, clamped so a submission always
// draws at least 1 from the card.
func FinalAmount(requested, discount int) int {
	final := requested - discount
	if final < 1 {
		return 1
	}
	return final
}

func (s *Submission) ID() uuid.UUID         { return s.id }
func (s *Submission) CardID() uuid.UUID     { return s.cardID }
func (s *Submission) CardTitle() string     { return s.cardTitle }
func (s *Submission) CardRecipient() string { return s.cardRecipient }
func (s *Submission) Class() string         { return s.class }
func (s *Submission) Assignment() string    { return s.assignment }
func (s *Submission) Amount() int           { return s.amount }
func (s *Submission) OriginalAmount() int   { return s.originalAmt }
func (s *Submission) PromoCode() *string    { return s.promoCode }
func (s *Submission) PromoDiscount() int    { return s.promoDiscount }
func (s *Submission) Contact() Contact      { return s.contact }
func (s *Submission) Status() Status        { return s.status }
func (s *Submission) CreatedAt() time.Time  { return s.createdAt }
