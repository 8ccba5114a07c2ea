// Package scheduler contains the pure lifecycle rules for the refresh loop.
// This is part of the Functional Core - no I/O, only pure functions.
package scheduler

import (
	"errors"
	"fmt"
	"time"
)

// State is the refresh loop's lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateStopped State = "stopped"
)

// Tick interval bounds.
const (
	DefaultInterval = time.Second
	MinInterval     = 10 * time.Millisecond
)

var (
	// ErrAlreadyStarted is returned when the loop has already left Idle.
	ErrAlreadyStarted = errors.New("scheduler already started")
	// ErrUnknownMission is returned when subscribing to a mission that was not loaded.
	ErrUnknownMission = errors.New("unknown mission")
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
	Cause   error  // Sentinel the reason belongs to, if any
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Cause != nil {
		return fmt.Errorf("%s: %w", r.Reason, r.Cause)
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanStart evaluates whether the loop may start from state.
// Rule: a scheduler runs at most once.
func CanStart(state State) GuardResult {
	if state != StateIdle {
		return GuardResult{
			Reason: fmt.Sprintf("cannot start scheduler in state %s", state),
			Cause:  ErrAlreadyStarted,
		}
	}
	return GuardResult{Allowed: true}
}

// SubscribeContext provides the context needed to evaluate a subscription.
type SubscribeContext struct {
	State        State
	MissionID    string
	MissionKnown bool
	HasCallback  bool
	Row          int
}

// CanSubscribe evaluates whether a display subscription may be registered.
// Rules: membership is fixed once the loop starts, the mission must exist,
// a callback is required and rows are non-negative.
func CanSubscribe(ctx SubscribeContext) GuardResult {
	if ctx.State != StateIdle {
		return GuardResult{
			Reason: fmt.Sprintf("cannot subscribe to %s while scheduler is %s", ctx.MissionID, ctx.State),
			Cause:  ErrAlreadyStarted,
		}
	}
	if !ctx.MissionKnown {
		return GuardResult{
			Reason: fmt.Sprintf("mission %s is not loaded", ctx.MissionID),
			Cause:  ErrUnknownMission,
		}
	}
	if !ctx.HasCallback {
		return GuardResult{Reason: fmt.Sprintf("subscription to %s has no callback", ctx.MissionID)}
	}
	if ctx.Row < 0 {
		return GuardResult{Reason: fmt.Sprintf("subscription to %s has negative row %d", ctx.MissionID, ctx.Row)}
	}
	return GuardResult{Allowed: true}
}

// ValidateInterval rejects tick periods too short to be meaningful on a display.
func ValidateInterval(d time.Duration) error {
	if d < MinInterval {
		return fmt.Errorf("tick interval %v is below the minimum %v", d, MinInterval)
	}
	return nil
}
