package cardrequest

import (
	"strings"
	"time"

	"card-tracker/internal/domain/submission"
	"card-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errs.New("requester name is empty")
	ErrEmptyClass = errs.New("class is empty")
)

// Status follows the same pending -> approved/denied machine as
// submissions; both outcomes are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

func (s Status) String() string { return string(s) }

type CardRequest struct {
	id        uuid.UUID
	name      string
	class     string
	contact   submission.Contact
	reason    *string
	status    Status
	createdAt time.Time
}

func NewCardRequest(name, class string, contact submission.Contact, reason string, now time.Time) (*CardRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	class = strings.TrimSpace(class)
	if class == "" {
		return nil, ErrEmptyClass
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	var reasonPtr *string
	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		reasonPtr = &trimmed
	}

	return &CardRequest{
		id:        uuid.New(),
		name:      name,
		class:     class,
		contact:   contact,
		reason:    reasonPtr,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

// CardTitle is the title of the card minted when this request is approved.
func (r *CardRequest) CardTitle() string {
	return "Card for " + r.name
}

func (r *CardRequest) ID() uuid.UUID               { return r.id }
func (r *CardRequest) Name() string                { return r.name }
func (r *CardRequest) Class() string               { return r.class }
func (r *CardRequest) Contact() submission.Contact { return r.contact }
func (r *CardRequest) Reason() *string             { return r.reason }
func (r *CardRequest) Status() Status              { return r.status }
func (r *CardRequest) CreatedAt() time.Time        { return r.createdAt }
