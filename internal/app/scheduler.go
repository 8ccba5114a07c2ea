package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/example/mclock/internal/clock"
	coremission "github.com/example/mclock/internal/core/mission"
	corescheduler "github.com/example/mclock/internal/core/scheduler"
	"github.com/example/mclock/internal/ports/primary"
)

// SchedulerOptions configures the refresh loop.
type SchedulerOptions struct {
	Interval time.Duration             // tick period; zero means corescheduler.DefaultInterval
	Style    coremission.NegativeStyle // how negative durations render
	OnCycle  func(primary.CycleReport) // called after every completed tick
	Logger   *slog.Logger
}

// Scheduler implements primary.RefreshScheduler on a single goroutine:
// each tick renders every mission in registry order, notifies its
// subscribers and then hands back to the ticker.
type Scheduler struct {
	registry primary.MissionRegistry
	clock    clock.Clock
	interval time.Duration
	style    coremission.NegativeStyle
	onCycle  func(primary.CycleReport)
	logger   *slog.Logger

	mu     sync.Mutex
	state  corescheduler.State
	subs   map[string][]primary.Subscription
	cycles int

	stop     chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates an idle scheduler over the registry's missions.
// It returns an error if the interval is below corescheduler.MinInterval.
func NewScheduler(registry primary.MissionRegistry, clk clock.Clock, opts SchedulerOptions) (*Scheduler, error) {
	if opts.Interval == 0 {
		opts.Interval = corescheduler.DefaultInterval
	}
	if err := corescheduler.ValidateInterval(opts.Interval); err != nil {
		return nil, err
	}
	if opts.Style == "" {
		opts.Style = coremission.NegativeSign
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Scheduler{
		registry: registry,
		clock:    clk,
		interval: opts.Interval,
		style:    opts.Style,
		onCycle:  opts.OnCycle,
		logger:   opts.Logger,
		state:    corescheduler.StateIdle,
		subs:     make(map[string][]primary.Subscription),
		stop:     make(chan struct{}),
	}, nil
}

// Subscribe registers a display subscription for one mission.
func (s *Scheduler) Subscribe(sub primary.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, known := s.registry.Lookup(sub.MissionID)
	guard := corescheduler.CanSubscribe(corescheduler.SubscribeContext{
		State:        s.state,
		MissionID:    sub.MissionID,
		MissionKnown: known,
		HasCallback:  sub.Notify != nil,
		Row:          sub.Row,
	})
	if !guard.Allowed {
		return guard.Error()
	}

	s.subs[sub.MissionID] = append(s.subs[sub.MissionID], sub)
	return nil
}

// Run ticks until ctx is done or Stop is called. The first tick happens
// immediately. Cancellation is only observed between ticks.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	if guard := corescheduler.CanStart(s.state); !guard.Allowed {
		s.mu.Unlock()
		return guard.Error()
	}
	s.state = corescheduler.StateRunning
	s.mu.Unlock()

	s.logger.Debug("scheduler running", "interval", s.interval, "missions", len(s.registry.Missions()))
	defer s.setState(corescheduler.StateStopped)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	s.Tick(s.clock.Now())
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("scheduler stopping", "reason", ctx.Err(), "cycles", s.Cycles())
			return nil
		case <-s.stop:
			s.logger.Debug("scheduler stopping", "reason", "stop requested", "cycles", s.Cycles())
			return nil
		case <-ticker.C():
			s.Tick(s.clock.Now())
		}
	}
}

// Tick renders every mission at now and notifies subscribers in registry
// order, then reports the cycle.
func (s *Scheduler) Tick(now time.Time) primary.CycleReport {
	missions := s.registry.Missions()
	report := primary.CycleReport{Now: now, Missions: len(missions)}

	s.mu.Lock()
	subs := s.subs
	s.mu.Unlock()

	for _, m := range missions {
		faces := m.Render(now, s.style)
		for _, sub := range subs[m.ID()] {
			sub.Notify(sub.Row, faces)
			report.Notified++
		}
	}

	s.mu.Lock()
	s.cycles++
	report.Cycle = s.cycles
	s.mu.Unlock()

	if s.onCycle != nil {
		s.onCycle(report)
	}
	return report
}

// Stop ends the loop after the tick in progress. Stopping an idle
// scheduler moves it straight to Stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.state == corescheduler.StateIdle {
		s.state = corescheduler.StateStopped
	}
	s.mu.Unlock()
	s.stopOnce.Do(func() { close(s.stop) })
}

// State reports the current lifecycle state.
func (s *Scheduler) State() corescheduler.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cycles returns the number of completed ticks.
func (s *Scheduler) Cycles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycles
}

// Interval returns the configured tick period.
func (s *Scheduler) Interval() time.Duration { return s.interval }

func (s *Scheduler) setState(state corescheduler.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
