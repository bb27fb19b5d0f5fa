// Package progress reports how far a long running export has come.
//
// A Tracker counts processed items and turns the count into Signals for an
// Observer: one when work starts, one each time another 10% of a known total
// is crossed (or every 5000 items when the total is unknown), and one when
// work finishes.
package progress

import (
	"math/bits"
	"sync"
	"time"
)

const (
	PercentStep = 10
	ItemStep    = 5000
)

type State int

const (
	Idle State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

type SignalKind string

const (
	SignalStarted  SignalKind = "started"
	SignalProgress SignalKind = "progress"
	SignalFinished SignalKind = "finished"
)

type Signal struct {
	Kind      SignalKind
	Processed uint64
	// Total is only meaningful when HasTotal is set.
	Total    uint64
	HasTotal bool
	// Percent is the threshold crossed by a progress signal with a known
	// total; always a multiple of PercentStep.
	Percent uint64
	Elapsed time.Duration
}

type Observer interface {
	Observe(Signal)
}

type ObserverFunc func(Signal)

func (f ObserverFunc) Observe(s Signal) { f(s) }

type MultiObserver []Observer

func (m MultiObserver) Observe(s Signal) {
	for _, o := range m {
		o.Observe(s)
	}
}

type Option func(*Tracker)

func WithTotal(total uint64) Option {
	return func(t *Tracker) {
		t.total = total
		t.hasTotal = true
	}
}

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

type Tracker struct {
	mu       sync.Mutex
	observer Observer
	now      func() time.Time

	total    uint64
	hasTotal bool

	state        State
	processed    uint64
	lastPercent  uint64
	lastItemMark uint64
	startedAt    time.Time
}

func NewTracker(observer Observer, opts ...Option) *Tracker {
	t := &Tracker{
		observer: observer,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start moves the tracker from Idle to Running. Thresholds already crossed by
// items tracked before Start never fire.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Idle {
		return
	}
	t.state = Running
	t.startedAt = t.now()
	t.lastPercent = t.percent() / PercentStep * PercentStep
	t.lastItemMark = t.processed / ItemStep * ItemStep
	t.emit(Signal{Kind: SignalStarted})
}

func (t *Tracker) Track(n uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.processed += n
	if t.state != Running {
		return
	}

	if t.hasTotal {
		if t.total == 0 {
			return
		}
		threshold := t.percent() / PercentStep * PercentStep
		if threshold > t.lastPercent {
			t.lastPercent = threshold
			t.emit(Signal{Kind: SignalProgress, Percent: threshold})
		}
		return
	}

	mark := t.processed / ItemStep * ItemStep
	if mark > t.lastItemMark {
		t.lastItemMark = mark
		t.emit(Signal{Kind: SignalProgress})
	}
}

// Finish moves the tracker from Running to Finished and reports the total
// processed count and elapsed time.
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Running {
		return
	}
	t.state = Finished
	t.emit(Signal{Kind: SignalFinished, Elapsed: t.now().Sub(t.startedAt)})
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tracker) Processed() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.processed
}

// percent returns floor(processed * 100 / total), capped at 100.
func (t *Tracker) percent() uint64 {
	if !t.hasTotal || t.total == 0 {
		return 0
	}
	if t.processed >= t.total {
		return 100
	}
	hi, lo := bits.Mul64(t.processed, 100)
	quo, _ := bits.Div64(hi, lo, t.total)
	return quo
}

// emit must be called with mu held so observers see signals in order.
func (t *Tracker) emit(s Signal) {
	if t.observer == nil {
		return
	}
	s.Processed = t.processed
	s.Total = t.total
	s.HasTotal = t.hasTotal
	t.observer.Observe(s)
}
