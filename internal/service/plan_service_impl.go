package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/importer"
	"github.com/alexanderramin/prodplan/internal/repository"
	"github.com/alexanderramin/prodplan/internal/scheduler"
	"github.com/google/uuid"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrAmbiguousID  = errors.New("ambiguous plan id prefix")
	ErrDuplicateID  = errors.New("plan id already exists")
)

// DefaultSlotKey is the slot holding the plan collection.
const DefaultSlotKey = "prod_planning_data"

// PlanServiceOption configures a plan service.
type PlanServiceOption func(*planService)

func WithLogger(l *slog.Logger) PlanServiceOption {
	return func(s *planService) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) PlanServiceOption {
	return func(s *planService) {
		if now != nil {
			s.clock = now
		}
	}
}

func WithLocation(loc *time.Location) PlanServiceOption {
	return func(s *planService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithObserver(o UseCaseObserver) PlanServiceOption {
	return func(s *planService) {
		if o != nil {
			s.observer = o
		}
	}
}

type planService struct {
	slot     repository.SlotRepo
	key      string
	logger   *slog.Logger
	observer UseCaseObserver
	clock    func() time.Time
	loc      *time.Location

	mu     sync.Mutex
	plans  []*domain.ProductionPlan
	loaded bool
}

func NewPlanService(slot repository.SlotRepo, key string, opts ...PlanServiceOption) PlanService {
	if key == "" {
		key = DefaultSlotKey
	}
	s := &planService{
		slot:     slot,
		key:      key,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: NoopUseCaseObserver{},
		clock:    time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *planService) Now() time.Time {
	return s.clock().In(s.loc)
}

func (s *planService) Today() domain.Date {
	return domain.Today(s.clock(), s.loc)
}

func (s *planService) Location() *time.Location {
	return s.loc
}

// Load replaces the in-memory collection with the slot contents. A missing
// or unreadable document yields an empty collection.
func (s *planService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *planService) loadLocked(ctx context.Context) error {
	data, err := s.slot.Read(ctx, s.key)
	switch {
	case errors.Is(err, repository.ErrSlotNotFound):
		s.plans = nil
		s.loaded = true
		return nil
	case err != nil:
		return fmt.Errorf("reading plans: %w", err)
	}

	plans, err := importer.ParseSnapshot(data)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding unreadable plan data",
			"slot", s.key, "bytes", len(data), "error", err)
		plans = nil
	}
	s.plans = plans
	s.loaded = true
	return nil
}

func (s *planService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

// persistLocked writes next to the slot and adopts it only once the write
// succeeded, so a failed save leaves the collection unchanged.
func (s *planService) persistLocked(ctx context.Context, next []*domain.ProductionPlan) error {
	if next == nil {
		next = []*domain.ProductionPlan{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding plans: %w", err)
	}
	if err := s.slot.Replace(ctx, s.key, data); err != nil {
		return fmt.Errorf("saving plans: %w", err)
	}
	s.plans = next
	return nil
}

func (s *planService) List(ctx context.Context) ([]*domain.ProductionPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return clonePlans(s.plans), nil
}

func (s *planService) Get(ctx context.Context, id string) (*domain.ProductionPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	i, err := resolveIndex(s.plans, id)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", id, err)
	}
	return s.plans[i].Clone(), nil
}

// Add assigns id, creation time and default line when absent, fills the
// derived dates when none were supplied, and prepends the plan.
func (s *planService) Add(ctx context.Context, p *domain.ProductionPlan) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"customer": p.Customer}
	defer func() {
		s.observe(ctx, "add-plan", startedAt, err, fields)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ensureLoaded(ctx); err != nil {
		return err
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	} else if indexByID(s.plans, p.ID) >= 0 {
		return fmt.Errorf("%s: %w", p.ID, ErrDuplicateID)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.clock().UTC()
	}
	if p.ProductionLine == "" {
		p.ProductionLine = domain.DefaultLine
	}
	if !hasDerivedDates(p) {
		scheduler.ApplyDerived(p, s.Today())
	}
	if err = p.Validate(); err != nil {
		return err
	}
	fields["plan_id"] = p.ID

	next := make([]*domain.ProductionPlan, 0, len(s.plans)+1)
	next = append(next, p.Clone())
	next = append(next, s.plans...)
	return s.persistLocked(ctx, next)
}

// Update replaces the stored plan with the same id in place. The stored id
// and creation time always win over the incoming values.
func (s *planService) Update(ctx context.Context, p *domain.ProductionPlan) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"plan_id": p.ID}
	defer func() {
		s.observe(ctx, "update-plan", startedAt, err, fields)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ensureLoaded(ctx); err != nil {
		return err
	}

	i := indexByID(s.plans, p.ID)
	if i < 0 {
		return fmt.Errorf("%q: %w", p.ID, ErrPlanNotFound)
	}
	if err = p.Validate(); err != nil {
		return err
	}

	updated := p.Clone()
	updated.ID = s.plans[i].ID
	updated.CreatedAt = s.plans[i].CreatedAt

	next := clonePlans(s.plans)
	next[i] = updated
	if err = s.persistLocked(ctx, next); err != nil {
		return err
	}
	p.CreatedAt = updated.CreatedAt
	return nil
}

// Remove deletes every plan with exactly this id; a duplicate import can
// leave several. An unknown id is not an error; removed reports whether
// anything changed.
func (s *planService) Remove(ctx context.Context, id string) (removed bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"plan_id": id}
	defer func() {
		fields["removed"] = removed
		s.observe(ctx, "remove-plan", startedAt, err, fields)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	next := make([]*domain.ProductionPlan, 0, len(s.plans))
	for _, p := range s.plans {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(s.plans) {
		return false, nil
	}
	fields["dropped"] = len(s.plans) - len(next)
	if err = s.persistLocked(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// ImportMerge merges an imported batch ahead of the existing plans, keeping
// the batch order.
func (s *planService) ImportMerge(ctx context.Context, batch []*domain.ProductionPlan, strategy domain.MergeStrategy) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"strategy": string(strategy), "batch_size": len(batch)}
	defer func() {
		if result != nil {
			fields["added"] = result.Added
			fields["skipped"] = result.Skipped
			fields["overwritten"] = result.Overwritten
		}
		s.observe(ctx, "import-plans", startedAt, err, fields)
	}()

	if strategy == "" {
		strategy = domain.MergeDuplicate
	}
	if _, ok := domain.ParseMergeStrategy(string(strategy)); !ok {
		return nil, fmt.Errorf("unknown merge strategy %q", strategy)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	existing := idSet(s.plans)
	result = &ImportResult{Strategy: strategy}
	merged := clonePlans(s.plans)
	var prepend []*domain.ProductionPlan

	for _, p := range batch {
		_, collides := existing[p.ID]
		if collides {
			result.CollidingIDs = append(result.CollidingIDs, p.ID)
		}
		switch {
		case collides && strategy == domain.MergeSkipExisting:
			result.Skipped++
		case collides && strategy == domain.MergeOverwrite:
			merged[indexByID(merged, p.ID)] = p.Clone()
			result.Overwritten++
		default:
			prepend = append(prepend, p.Clone())
			result.Added++
		}
	}

	if result.Added == 0 && result.Overwritten == 0 {
		return result, nil
	}
	next := make([]*domain.ProductionPlan, 0, len(prepend)+len(merged))
	next = append(next, prepend...)
	next = append(next, merged...)
	if err = s.persistLocked(ctx, next); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *planService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	observeUseCase(ctx, s.observer, name, startedAt, err, fields)
}

func hasDerivedDates(p *domain.ProductionPlan) bool {
	return !p.ExpectedDeliveryDate.IsZero() ||
		!p.ProductionEntryDeadline.IsZero() ||
		!p.CompletionForecast.IsZero()
}
