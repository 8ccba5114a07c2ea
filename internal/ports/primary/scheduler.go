package primary

import (
	"context"
	"time"

	coremission "github.com/example/mclock/internal/core/mission"
	corescheduler "github.com/example/mclock/internal/core/scheduler"
)

// Lifecycle errors, re-exported for callers of the port.
var (
	ErrAlreadyStarted = corescheduler.ErrAlreadyStarted
	ErrUnknownMission = corescheduler.ErrUnknownMission
)

// SchedulerState is the refresh loop's lifecycle state.
type SchedulerState = corescheduler.State

// NotifyFunc receives the freshly rendered faces for one mission.
// row is the display position given at subscription time.
type NotifyFunc func(row int, faces coremission.Faces)

// Subscription registers a display collaborator for one mission.
type Subscription struct {
	Row       int
	MissionID string
	Notify    NotifyFunc
}

// CycleReport summarises one completed refresh tick.
type CycleReport struct {
	Cycle    int
	Now      time.Time
	Missions int
	Notified int
}

// RefreshScheduler drives periodic recomputation of every mission.
type RefreshScheduler interface {
	// Subscribe registers a display subscription. Only allowed while Idle.
	Subscribe(sub Subscription) error

	// Run moves Idle to Running and ticks until ctx is done or Stop is
	// called, then moves to Stopped. A tick in progress always completes.
	Run(ctx context.Context) error

	// Tick runs a single refresh cycle at now, outside the loop.
	Tick(now time.Time) CycleReport

	// Stop ends a running loop after the current tick.
	Stop()

	// State reports the current lifecycle state.
	State() SchedulerState
}
