package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/prodplan/internal/contract"
	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/report"
)

// PlanService owns the ordered plan collection (newest first) and keeps it
// in sync with its persistence slot.
type PlanService interface {
	Load(ctx context.Context) error
	List(ctx context.Context) ([]*domain.ProductionPlan, error)
	Get(ctx context.Context, id string) (*domain.ProductionPlan, error)
	Add(ctx context.Context, p *domain.ProductionPlan) error
	Update(ctx context.Context, p *domain.ProductionPlan) error
	Remove(ctx context.Context, id string) (bool, error)
	ImportMerge(ctx context.Context, plans []*domain.ProductionPlan, strategy domain.MergeStrategy) (*ImportResult, error)

	// Now returns the service clock in the configured location.
	Now() time.Time
	Today() domain.Date
	Location() *time.Location
}

// ImportResult holds the outcome of merging an imported batch.
type ImportResult struct {
	Strategy    domain.MergeStrategy
	Added       int
	Skipped     int
	Overwritten int
	// CollidingIDs lists imported ids already present before the merge.
	CollidingIDs []string
}

// ConfirmationKind names the mutation a pending confirmation guards.
type ConfirmationKind string

const (
	ConfirmDelete ConfirmationKind = "delete"
	ConfirmImport ConfirmationKind = "import"
)

// PendingConfirmation is a requested mutation awaiting the operator's answer.
type PendingConfirmation struct {
	Token   string
	Kind    ConfirmationKind
	Summary string
	Details []string
}

// ConfirmationOutcome reports what a confirmed mutation did.
type ConfirmationOutcome struct {
	Kind      ConfirmationKind
	RemovedID string
	Removed   bool
	Import    *ImportResult
}

type ConfirmationService interface {
	RequestDelete(ctx context.Context, id string) (*PendingConfirmation, error)
	RequestImport(ctx context.Context, batch []*domain.ProductionPlan, strategy domain.MergeStrategy) (*PendingConfirmation, error)
	Confirm(ctx context.Context, token string) (*ConfirmationOutcome, error)
	Cancel(token string) error
}

type ExportService interface {
	// Snapshot writes the full collection as a JSON backup and returns the
	// number of records written.
	Snapshot(ctx context.Context, w io.Writer) (int, error)
	// Report renders the filtered collection and returns the number of rows.
	Report(ctx context.Context, filter contract.PlanFilter, format report.Format, w io.Writer) (int, error)
}
