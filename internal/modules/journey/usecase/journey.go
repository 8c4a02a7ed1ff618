package usecase

import (
	"context"
	"sync"
	"time"

	"inward/internal/modules/journey/domain"
	"inward/internal/modules/journey/dto"
	journeyin "inward/internal/modules/journey/port/in"
	"inward/internal/modules/journey/service"
	"inward/internal/platform/clock"
	apperrors "inward/internal/platform/errors"
	"inward/internal/platform/timer"
)

// SaveDebounce is the quiet window that coalesces rapid edits into a single
// persisted write. An edit is durable once the window has elapsed.
const SaveDebounce = 300 * time.Millisecond

// Controller owns the live current journey. All mutations go through it:
// it applies them in memory, then schedules a debounced save so fast typing
// produces one write instead of one per keystroke. Start and archive persist
// immediately so a subsequent read always observes them.
type Controller struct {
	mu      sync.Mutex
	svc     *service.JourneyService
	clock   clock.Clock
	sched   timer.Scheduler
	current *domain.Journey
	cancel  timer.CancelFunc
	dirty   bool
}

// NewController loads the current journey synchronously; there is no async
// initialization to wait for.
func NewController(svc *service.JourneyService, clk clock.Clock, sched timer.Scheduler) *Controller {
	c := &Controller{svc: svc, clock: clk, sched: sched}
	if j, ok := svc.LoadCurrent(context.Background()); ok {
		c.current = &j
	}
	return c
}

var _ journeyin.Usecase = (*Controller)(nil)

func (c *Controller) Current(_ context.Context) (dto.JourneyOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return dto.JourneyOutput{}, apperrors.ErrNoCurrentJourney
	}
	return c.output(*c.current), nil
}

// StartNew leaves an in-progress journey untouched and returns it; a fresh
// record only displaces the current slot via ArchiveAndStartNew.
func (c *Controller) StartNew(ctx context.Context) (dto.JourneyOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		return c.output(*c.current), nil
	}
	return c.output(c.startNewLocked(ctx)), nil
}

func (c *Controller) startNewLocked(ctx context.Context) domain.Journey {
	c.dropPendingLocked()
	j := c.svc.SaveCurrent(ctx, c.svc.NewJourney())
	c.current = &j
	return j
}

func (c *Controller) UpdateResponse(_ context.Context, input dto.UpdateInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return apperrors.ErrNoCurrentJourney
	}
	if err := c.current.Responses.SetField(input.Rule, input.Field, input.Value, input.Slot); err != nil {
		return err
	}
	c.current.LastUpdatedAt = c.clock.Now()
	c.scheduleSaveLocked()
	return nil
}

func (c *Controller) MarkRuleComplete(_ context.Context, rule int) (dto.JourneyOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return dto.JourneyOutput{}, apperrors.ErrNoCurrentJourney
	}
	if rule < 1 || rule > domain.RuleCount {
		return dto.JourneyOutput{}, apperrors.ErrInvalidInput
	}
	c.current.MarkRule(rule, c.clock.Now())
	c.scheduleSaveLocked()
	return c.output(*c.current), nil
}

func (c *Controller) Reset(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return apperrors.ErrNoCurrentJourney
	}
	c.current.Reset(c.clock.Now())
	c.scheduleSaveLocked()
	return nil
}

func (c *Controller) ArchiveAndStartNew(ctx context.Context) (dto.JourneyOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	notePath := ""
	if c.current != nil {
		c.dropPendingLocked()
		_, notePath = c.svc.Archive(ctx, *c.current)
		c.current = nil
	}
	out := c.output(c.startNewLocked(ctx))
	out.NotePath = notePath
	return out, nil
}

func (c *Controller) History(ctx context.Context) ([]dto.JourneyOutput, error) {
	history := c.svc.History(ctx)
	out := make([]dto.JourneyOutput, 0, len(history))
	for _, j := range history {
		out = append(out, c.output(j))
	}
	return out, nil
}

func (c *Controller) Export(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return "", apperrors.ErrNoCurrentJourney
	}
	return domain.ExportText(*c.current), nil
}

// CurrentResponses exposes the raw answers for downstream narrative
// generation.
func (c *Controller) CurrentResponses(_ context.Context) (domain.Responses, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return domain.Responses{}, apperrors.ErrNoCurrentJourney
	}
	return c.current.Responses, nil
}

func (c *Controller) Themes(_ context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil, apperrors.ErrNoCurrentJourney
	}
	return domain.IdentifyThemes(*c.current), nil
}

// Flush persists any pending debounced write synchronously. Safe to call
// when nothing is pending.
func (c *Controller) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropPendingLocked()
	if c.dirty && c.current != nil {
		j := c.svc.SaveCurrent(context.Background(), *c.current)
		c.current = &j
	}
	c.dirty = false
}

// scheduleSaveLocked implements the cancel-and-reschedule debounce: at most
// one write is pending, and it always captures the newest state because the
// callback re-reads the current journey when it fires.
func (c *Controller) scheduleSaveLocked() {
	c.dirty = true
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = c.sched.Schedule(SaveDebounce, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.dirty || c.current == nil {
			return
		}
		j := c.svc.SaveCurrent(context.Background(), *c.current)
		c.current = &j
		c.dirty = false
		c.cancel = nil
	})
}

// dropPendingLocked cancels the pending write without persisting; used when
// the state about to be written is superseded by an immediate save.
func (c *Controller) dropPendingLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.dirty = false
}

func (c *Controller) output(j domain.Journey) dto.JourneyOutput {
	return dto.JourneyOutput{
		ID:             j.ID,
		StartedAt:      j.StartedAt,
		LastUpdatedAt:  j.LastUpdatedAt,
		CompletedAt:    j.CompletedAt,
		CompletedRules: append([]int{}, j.CompletedRules...),
		Complete:       j.IsComplete(),
		Themes:         domain.IdentifyThemes(j),
	}
}
