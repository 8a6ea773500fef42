package shared

import (
	"context"

	"card-tracker/internal/infra/db"
)

type UnitOfWork interface {
	// Within: transaction scope for multi-write operations (approve flows)
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: validation reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Cards() CardRepository
	CardRequests() CardRequestRepository
	Submissions() SubmissionRepository
	Coupons() CouponRepository
	Reads() CommandReads
	DB() db.Executor
}
