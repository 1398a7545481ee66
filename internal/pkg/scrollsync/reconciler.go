// Package scrollsync coordinates a calendar scrubber with an infinite-scroll
// feed grouped by date. It is a pure state machine: the embedding UI reports
// scroll events and date-group geometry, and the reconciler decides which
// date the scrubber should highlight.
//
// Sync is one-directional feed→scrubber: scrolling updates the highlight via
// subscribers. Explicit scrubber interaction goes the other way through
// BeginJump/EndJump, and while a programmatic scroll is in flight a guard
// flag suppresses feed→scrubber updates to avoid feedback oscillation.
// Cross-component signaling uses an explicit subscriber list instead of
// globally-scoped callbacks.
package scrollsync

import (
	"sync"
	"time"
)

// DefaultSettleWindow is how long after the last scroll event the reconciler
// waits before treating the feed as settled.
const DefaultSettleWindow = 150 * time.Millisecond

// bottomSlack is the tolerance, in the embedding UI's scroll units, for
// treating the viewport as scrolled to the very bottom of the content.
const bottomSlack = 2.0

// State is the scroll activity state of the feed.
type State int

const (
	// StateIdle means no scroll event has arrived within the settle window.
	StateIdle State = iota
	// StateScrolling is entered on a scroll event and left once the settle
	// window elapses with no further events.
	StateScrolling
)

// Date identifies a feed date group. Month is 0-11, matching the timeline
// availability index.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Group is the geometry of one date group in the feed, in the embedding
// UI's scroll units measured from the top of the scrollable content.
type Group struct {
	Date   Date
	Top    float64
	Height float64
}

// Viewport is the currently visible slice of the scrollable content.
type Viewport struct {
	Top           float64
	Height        float64
	ContentHeight float64
}

// NearestDate picks the date group nearest the top of the viewport, or, when
// the viewport is scrolled to the bottom of the content, the bottommost
// visible group. Returns false when no group qualifies.
func NearestDate(groups []Group, vp Viewport) (Date, bool) {
	if len(groups) == 0 {
		return Date{}, false
	}

	if vp.Top+vp.Height >= vp.ContentHeight-bottomSlack {
		// At the bottom the topmost-visible rule would skip the last few
		// short groups entirely, so report the bottommost visible one.
		best, found := Date{}, false
		bestTop := 0.0
		for _, g := range groups {
			if g.Top < vp.Top+vp.Height && (!found || g.Top > bestTop) {
				best, bestTop, found = g.Date, g.Top, true
			}
		}
		return best, found
	}

	best := groups[0].Date
	bestDist := distance(groups[0].Top, vp.Top)
	for _, g := range groups[1:] {
		if d := distance(g.Top, vp.Top); d < bestDist {
			best, bestDist = g.Date, d
		}
	}
	return best, true
}

func distance(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

// Reconciler tracks scroll state and publishes the currently-nearest date to
// subscribers. Safe for use from a single UI event loop; the mutex only
// protects against a stray background Settle timer.
type Reconciler struct {
	mu        sync.Mutex
	clock     Clock
	settle    time.Duration
	state     State
	lastEvent time.Time

	current    Date
	hasCurrent bool
	jumpTarget *Date

	subs []func(Date)
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithSettleWindow overrides the debounce window used to leave StateScrolling.
func WithSettleWindow(d time.Duration) Option {
	return func(r *Reconciler) { r.settle = d }
}

// New returns a Reconciler in StateIdle with no tracked date.
func New(clock Clock, opts ...Option) *Reconciler {
	r := &Reconciler{
		clock:  clock,
		settle: DefaultSettleWindow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Subscribe registers fn to be called whenever the tracked date changes via
// feed→scrubber sync. Subscribers are called synchronously, in registration
// order, with the reconciler lock released.
func (r *Reconciler) Subscribe(fn func(Date)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
}

// State returns the current scroll activity state.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Current returns the tracked date, if any.
func (r *Reconciler) Current() (Date, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.hasCurrent
}

// Observe records a scroll event: the machine enters StateScrolling and,
// unless a programmatic jump is in flight, immediately reconciles the
// tracked date against the reported geometry. Throttling to the native
// scroll-event cadence is the caller's concern; every call here is handled.
func (r *Reconciler) Observe(groups []Group, vp Viewport) {
	r.mu.Lock()
	r.state = StateScrolling
	r.lastEvent = r.clock.Now()
	notify, date := r.reconcileLocked(groups, vp)
	r.mu.Unlock()

	if notify {
		r.publish(date)
	}
}

// Settle transitions StateScrolling→StateIdle once the settle window has
// elapsed since the last scroll event, reconciling once more on the way out.
// Returns whether a transition happened. Callers are expected to invoke this
// from a timer armed after each Observe.
func (r *Reconciler) Settle(groups []Group, vp Viewport) bool {
	r.mu.Lock()
	if r.state != StateScrolling || r.clock.Now().Sub(r.lastEvent) < r.settle {
		r.mu.Unlock()
		return false
	}
	r.state = StateIdle
	notify := false
	var date Date
	if r.jumpTarget == nil {
		notify, date = r.reconcileLocked(groups, vp)
	}
	r.mu.Unlock()

	if notify {
		r.publish(date)
	}
	return true
}

// BeginJump starts a programmatic scroll to the group for date, returning
// the scroll offset the UI should animate to. While the jump is in flight,
// feed→scrubber sync is suppressed; a second BeginJump simply supersedes the
// first with a new target. Returns false when date has no group.
func (r *Reconciler) BeginJump(groups []Group, date Date) (float64, bool) {
	for _, g := range groups {
		if g.Date == date {
			r.mu.Lock()
			target := date
			r.jumpTarget = &target
			r.mu.Unlock()
			return g.Top, true
		}
	}
	return 0, false
}

// EndJump marks the in-flight programmatic scroll as finished. The jump
// target becomes the tracked date without notifying subscribers: the
// scrubber initiated the jump and already reflects it.
func (r *Reconciler) EndJump() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.jumpTarget == nil {
		return
	}
	r.current = *r.jumpTarget
	r.hasCurrent = true
	r.jumpTarget = nil
}

// Jumping reports whether a programmatic scroll is in flight.
func (r *Reconciler) Jumping() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jumpTarget != nil
}

// reconcileLocked updates the tracked date and reports whether subscribers
// should be notified. Caller holds r.mu.
func (r *Reconciler) reconcileLocked(groups []Group, vp Viewport) (bool, Date) {
	if r.jumpTarget != nil {
		return false, Date{}
	}
	date, ok := NearestDate(groups, vp)
	if !ok || (r.hasCurrent && date == r.current) {
		return false, Date{}
	}
	r.current = date
	r.hasCurrent = true
	return true, date
}

func (r *Reconciler) publish(date Date) {
	r.mu.Lock()
	subs := make([]func(Date), len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()
	for _, fn := range subs {
		fn(date)
	}
}
