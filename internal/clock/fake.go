package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock for tests. Tickers fire only when
// Advance moves time past their next deadline; like time.Ticker, a tick is
// dropped if the previous one has not been received yet.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

// NewFake creates a fake clock reading start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	t := &fakeTicker{
		clock:  f,
		period: d,
		next:   f.now.Add(d),
		ch:     make(chan time.Time, 1),
	}
	f.tickers = append(f.tickers, t)
	return t
}

// Set moves the clock to t without firing tickers.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

// Advance moves the clock forward by d and fires every ticker whose
// deadline has been reached.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
	for _, t := range f.tickers {
		if t.stopped {
			continue
		}
		fired := false
		for !t.next.After(f.now) {
			t.next = t.next.Add(t.period)
			fired = true
		}
		if fired {
			select {
			case t.ch <- f.now:
			default:
			}
		}
	}
}

// Tickers returns how many tickers are still running.
func (f *Fake) Tickers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.tickers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type fakeTicker struct {
	clock   *Fake
	period  time.Duration
	next    time.Time
	ch      chan time.Time
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}
