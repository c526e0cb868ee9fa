package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/importer"
	"github.com/google/uuid"
)

// ErrUnknownToken is returned for a token that was never issued, or was
// already confirmed or cancelled.
var ErrUnknownToken = errors.New("unknown or expired confirmation token")

type pendingAction struct {
	kind     ConfirmationKind
	planID   string
	batch    []*domain.ProductionPlan
	strategy domain.MergeStrategy
}

type confirmationService struct {
	plans PlanService

	mu      sync.Mutex
	pending map[string]pendingAction
}

func NewConfirmationService(plans PlanService) ConfirmationService {
	return &confirmationService{
		plans:   plans,
		pending: make(map[string]pendingAction),
	}
}

// RequestDelete resolves id (exact or unique prefix) and stages its removal.
func (s *confirmationService) RequestDelete(ctx context.Context, id string) (*PendingConfirmation, error) {
	p, err := s.plans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	token := s.stage(pendingAction{kind: ConfirmDelete, planID: p.ID})
	return &PendingConfirmation{
		Token: token,
		Kind:  ConfirmDelete,
		Summary: fmt.Sprintf("Delete plan %s (%s, %s, line %s)?",
			p.DisplayID(), p.Customer, p.ProductType, p.ProductionLine),
	}, nil
}

// RequestImport stages a batch merge. The summary counts the records and
// the ids that already exist; Details carries the batch anomalies.
func (s *confirmationService) RequestImport(ctx context.Context, batch []*domain.ProductionPlan, strategy domain.MergeStrategy) (*PendingConfirmation, error) {
	if strategy == "" {
		strategy = domain.MergeDuplicate
	}
	if _, ok := domain.ParseMergeStrategy(string(strategy)); !ok {
		return nil, fmt.Errorf("unknown merge strategy %q", strategy)
	}
	existing, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}

	present := idSet(existing)
	colliding := 0
	for _, p := range batch {
		if _, ok := present[p.ID]; ok {
			colliding++
		}
	}

	summary := fmt.Sprintf("Import %d record(s) into %d existing (strategy %s)", len(batch), len(existing), strategy)
	if colliding > 0 {
		summary += fmt.Sprintf("; %d id(s) already present", colliding)
	}

	token := s.stage(pendingAction{kind: ConfirmImport, batch: clonePlans(batch), strategy: strategy})
	return &PendingConfirmation{
		Token:   token,
		Kind:    ConfirmImport,
		Summary: summary + "?",
		Details: importer.Inspect(batch),
	}, nil
}

// Confirm performs the staged mutation. The token is consumed even when the
// mutation fails.
func (s *confirmationService) Confirm(ctx context.Context, token string) (*ConfirmationOutcome, error) {
	action, err := s.take(token)
	if err != nil {
		return nil, err
	}

	switch action.kind {
	case ConfirmDelete:
		removed, err := s.plans.Remove(ctx, action.planID)
		if err != nil {
			return nil, err
		}
		return &ConfirmationOutcome{Kind: ConfirmDelete, RemovedID: action.planID, Removed: removed}, nil
	case ConfirmImport:
		res, err := s.plans.ImportMerge(ctx, action.batch, action.strategy)
		if err != nil {
			return nil, err
		}
		return &ConfirmationOutcome{Kind: ConfirmImport, Import: res}, nil
	default:
		return nil, fmt.Errorf("unsupported confirmation kind %q", action.kind)
	}
}

func (s *confirmationService) Cancel(token string) error {
	_, err := s.take(token)
	return err
}

func (s *confirmationService) stage(a pendingAction) string {
	token := uuid.New().String()
	s.mu.Lock()
	s.pending[token] = a
	s.mu.Unlock()
	return token
}

func (s *confirmationService) take(token string) (pendingAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.pending[token]
	if !ok {
		return pendingAction{}, ErrUnknownToken
	}
	delete(s.pending, token)
	return a, nil
}
