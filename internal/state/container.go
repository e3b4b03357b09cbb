// Package state owns the live engine state: the current component
// selections and country context, the derived snapshot, the subscriber
// list and the periodic metrics refresh. All recomputation is
// synchronous; a single mutex serializes every mutate-recompute cycle so
// subscribers never observe a partially updated snapshot.
package state

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/algolds/ixgov/internal/calculation"
	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/domain"
)

// DefaultRefreshInterval is the period of the metrics/history refresh
// that runs independently of mutations.
const DefaultRefreshInterval = 30 * time.Second

// Listener receives a full, independent snapshot copy after every
// recompute and every periodic refresh.
type Listener func(domain.UnifiedState)

type listenerEntry struct {
	id int64
	fn Listener
}

// Container is the unified state container. Construct with New; a zero
// Container is not usable. Close must be called to stop the refresh
// timer.
type Container struct {
	mu sync.Mutex

	cat   *catalog.Catalog
	rules catalog.Rules
	clock func() time.Time
	log   calculation.Logger

	governance domain.Selection
	economic   domain.Selection
	tax        domain.Selection
	ctx        domain.CountryContext
	baseline   domain.EconomicBaseline

	snapshot domain.UnifiedState

	listeners []listenerEntry
	nextID    int64

	interval time.Duration
	done     chan struct{}
	closed   atomic.Bool
}

// Option configures a Container at construction.
type Option func(*Container)

// WithCatalog swaps the component catalog (tests, alternate rule packs).
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Container) { c.cat = cat }
}

// WithRules swaps the rule tables.
func WithRules(rules catalog.Rules) Option {
	return func(c *Container) { c.rules = rules }
}

// WithRefreshInterval overrides the periodic refresh interval.
func WithRefreshInterval(d time.Duration) Option {
	return func(c *Container) { c.interval = d }
}

// WithClock overrides the time source (tests).
func WithClock(clock func() time.Time) Option {
	return func(c *Container) { c.clock = clock }
}

// WithContext sets the initial country context.
func WithContext(ctx domain.CountryContext) Option {
	return func(c *Container) { c.ctx = ctx }
}

// WithBaseline sets the initial economic baseline.
func WithBaseline(baseline domain.EconomicBaseline) Option {
	return func(c *Container) { c.baseline = baseline }
}

// WithLogger attaches a logger for recompute visibility.
func WithLogger(log calculation.Logger) Option {
	return func(c *Container) { c.log = log }
}

// New creates a container with an empty selection, recomputes the
// initial (neutral) snapshot and starts the periodic refresh timer.
func New(opts ...Option) *Container {
	c := &Container{
		cat:      catalog.Default(),
		rules:    catalog.DefaultRules(),
		clock:    time.Now,
		log:      calculation.NopLogger{},
		interval: DefaultRefreshInterval,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	c.recomputeLocked()
	c.mu.Unlock()

	go c.refreshLoop()
	return c
}

// ReplaceSelection replaces one family's selection wholesale and
// recomputes. Duplicate kinds in the input collapse to set membership.
func (c *Container) ReplaceSelection(family domain.ComponentFamily, kinds []domain.ComponentKind) {
	var selection domain.Selection
	for _, k := range kinds {
		selection = selection.With(k)
	}

	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return
	}
	switch family {
	case domain.FamilyEconomic:
		c.economic = selection
	case domain.FamilyTax:
		c.tax = selection
	default:
		c.governance = selection
	}
	c.recomputeLocked()
	listeners, snapshot := c.notifySetLocked()
	c.mu.Unlock()

	c.notify(listeners, snapshot)
}

// AddComponent adds a kind to its family's selection. Adding a kind that
// is already selected is a no-op: no recompute, no notification.
func (c *Container) AddComponent(kind domain.ComponentKind) {
	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return
	}
	selection := c.selectionForLocked(kind)
	if selection.Contains(kind) {
		c.mu.Unlock()
		return
	}
	c.setSelectionForLocked(kind, selection.With(kind))
	c.recomputeLocked()
	listeners, snapshot := c.notifySetLocked()
	c.mu.Unlock()

	c.notify(listeners, snapshot)
}

// RemoveComponent removes a kind from its family's selection. Removing
// an absent kind is a no-op.
func (c *Container) RemoveComponent(kind domain.ComponentKind) {
	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return
	}
	selection := c.selectionForLocked(kind)
	if !selection.Contains(kind) {
		c.mu.Unlock()
		return
	}
	c.setSelectionForLocked(kind, selection.Without(kind))
	c.recomputeLocked()
	listeners, snapshot := c.notifySetLocked()
	c.mu.Unlock()

	c.notify(listeners, snapshot)
}

// SetCountryContext applies a partial context update and recomputes.
func (c *Container) SetCountryContext(patch domain.ContextPatch) {
	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return
	}
	c.ctx = c.ctx.Apply(patch)
	c.recomputeLocked()
	listeners, snapshot := c.notifySetLocked()
	c.mu.Unlock()

	c.notify(listeners, snapshot)
}

// SetBaseline replaces the economic baseline and recomputes.
func (c *Container) SetBaseline(baseline domain.EconomicBaseline) {
	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return
	}
	c.baseline = baseline
	c.recomputeLocked()
	listeners, snapshot := c.notifySetLocked()
	c.mu.Unlock()

	c.notify(listeners, snapshot)
}

// Subscribe registers a listener and returns its unsubscribe function.
// Unsubscribing is safe from within a listener callback: the notify loop
// iterates over a stable copy of the listener list. Subscribing to a
// closed container is a no-op.
func (c *Container) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, entry := range c.listeners {
			if entry.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// State returns an independent copy of the current snapshot.
func (c *Container) State() domain.UnifiedState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.Clone()
}

// ComponentContribution reports one kind's impacts and selection status.
func (c *Container) ComponentContribution(kind domain.ComponentKind) domain.ComponentContribution {
	c.mu.Lock()
	defer c.mu.Unlock()
	return calculation.Contribution(kind, c.cat, c.governance, c.economic, c.tax)
}

// SystemHealth derives the aggregate qualitative assessment of the
// current snapshot.
func (c *Container) SystemHealth() domain.SystemHealth {
	c.mu.Lock()
	defer c.mu.Unlock()
	return calculation.AssessHealth(c.snapshot)
}

// Close stops the periodic refresh and drops all subscribers. It is
// idempotent, and a tick already in flight when Close runs is silently
// dropped rather than notifying stale listeners.
func (c *Container) Close() {
	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return
	}
	c.closed.Store(true)
	c.listeners = nil
	close(c.done)
	c.mu.Unlock()
}

func (c *Container) refreshLoop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.refreshMetrics()
		}
	}
}

// refreshMetrics is the periodic-tick path: it refreshes only the
// metrics/history derivation, not the full pipeline.
func (c *Container) refreshMetrics() {
	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return
	}
	calculation.RefreshMetrics(&c.snapshot, c.clock())
	listeners, snapshot := c.notifySetLocked()
	c.mu.Unlock()

	c.notify(listeners, snapshot)
}

// recomputeLocked runs the full pipeline against the current selection
// and context. Callers hold c.mu.
func (c *Container) recomputeLocked() {
	c.snapshot = calculation.BuildState(c.cat, c.rules,
		c.governance, c.economic, c.tax,
		c.ctx, c.baseline, c.snapshot.History, c.clock())
	c.log.Debugf("recomputed snapshot: effectiveness=%s synergies=%d conflicts=%d",
		c.snapshot.EffectivenessScore.StringFixed(2),
		len(c.snapshot.ActiveSynergies), len(c.snapshot.ActiveConflicts))
}

// notifySetLocked captures a stable copy of the listener list and the
// snapshot for notification outside the lock.
func (c *Container) notifySetLocked() ([]listenerEntry, domain.UnifiedState) {
	listeners := make([]listenerEntry, len(c.listeners))
	copy(listeners, c.listeners)
	return listeners, c.snapshot
}

// notify delivers the snapshot to each captured listener. The closed
// flag is rechecked before every invocation so a tick that was already
// in flight when Close ran stops delivering instead of reaching stale
// listeners.
func (c *Container) notify(listeners []listenerEntry, snapshot domain.UnifiedState) {
	for _, entry := range listeners {
		if c.closed.Load() {
			return
		}
		entry.fn(snapshot.Clone())
	}
}

func (c *Container) selectionForLocked(kind domain.ComponentKind) domain.Selection {
	switch c.cat.FamilyOf(kind) {
	case domain.FamilyEconomic:
		return c.economic
	case domain.FamilyTax:
		return c.tax
	default:
		return c.governance
	}
}

func (c *Container) setSelectionForLocked(kind domain.ComponentKind, selection domain.Selection) {
	switch c.cat.FamilyOf(kind) {
	case domain.FamilyEconomic:
		c.economic = selection
	case domain.FamilyTax:
		c.tax = selection
	default:
		c.governance = selection
	}
}
