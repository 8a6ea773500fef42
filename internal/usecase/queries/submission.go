package queries

import (
	"context"
	"strconv"
	"strings"
	"time"

	"card-tracker/internal/infra"
	"card-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSubmissionNotFound = errs.New("submission not found")

const csvTimeFormat = "2006-01-02 15:04:05"

type SubmissionReadStore interface {
	ListAll(ctx context.Context, status *string) ([]*SubmissionView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SubmissionView, error)
}

type SubmissionQueries interface {
	List(ctx context.Context, status *string) ([]*SubmissionView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SubmissionView, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

type submissionQueriesImpl struct {
	readStore SubmissionReadStore
}

func NewSubmissionQueries(readStore SubmissionReadStore) SubmissionQueries {
	return &submissionQueriesImpl{readStore: readStore}
}

func (q *submissionQueriesImpl) List(ctx context.Context, status *string) ([]*SubmissionView, error) {
	return q.readStore.ListAll(ctx, status)
}

func (q *submissionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SubmissionView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return view, nil
}

// ExportCSV is a naive comma join over a fixed field set. None of the
// exported fields may contain commas today; this is not a general CSV
// writer.
func (q *submissionQueriesImpl) ExportCSV(ctx context.Context) ([]byte, error) {
	views, err := q.readStore.ListAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(views)+1)
	lines = append(lines, "ID,Card Title,Class,Assignment Type,Amount,Status,Contact,Created")

	for _, v := range views {
		lines = append(lines, strings.Join([]string{
			v.ID.String(),
			v.CardTitle,
			v.Class,
			v.AssignmentType,
			strconv.Itoa(v.AmountRequested),
			v.Status,
			preferredContact(v.Phone, v.Email),
			v.CreatedAt.Format(csvTimeFormat),
		}, ","))
	}

	return []byte(strings.Join(lines, "\n") + "\n"), nil
}

func preferredContact(phone, email *string) string {
	if phone != nil {
		return *phone
	}
	if email != nil {
		return *email
	}
	return ""
}

// ExportFilename names the download after the export date.
func ExportFilename(now time.Time) string {
	return "submissions-" + now.Format("2006-01-02") + ".csv"
}
