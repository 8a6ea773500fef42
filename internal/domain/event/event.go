// Package event names the append-only audit record types. Events are never
// mutated or deleted; they are a best-effort trail, not a source of truth
// for balances.
package event

type Type string

const (
	TypeCardCreated         Type = "cardCreated"
	TypeCardRevoked         Type = "cardRevoked"
	TypeCardDeleted         Type = "cardDeleted"
	TypeCardRequestCreated  Type = "cardRequestCreated"
	TypeCardRequestApproved Type = "cardRequestApproved"
	TypeCardRequestDenied   Type = "cardRequestDenied"
	TypeSubmissionCreated   Type = "submissionCreated"
	TypeSubmissionApproved  Type = "submissionApproved"
	TypeSubmissionDenied    Type = "submissionDenied"
)

func (t Type) String() string { return string(t) }
