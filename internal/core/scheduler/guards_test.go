package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestCanStart(t *testing.T) {
	tests := []struct {
		name        string
		state       State
		wantAllowed bool
	}{
		{name: "idle can start", state: StateIdle, wantAllowed: true},
		{name: "running cannot start", state: StateRunning, wantAllowed: false},
		{name: "stopped cannot restart", state: StateStopped, wantAllowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanStart(tt.state)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanStart(%s).Allowed = %v, want %v", tt.state, result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && !errors.Is(result.Error(), ErrAlreadyStarted) {
				t.Errorf("CanStart(%s).Error() = %v, want ErrAlreadyStarted", tt.state, result.Error())
			}
			if tt.wantAllowed && result.Error() != nil {
				t.Errorf("allowed result returned error %v", result.Error())
			}
		})
	}
}

func TestCanSubscribe(t *testing.T) {
	valid := SubscribeContext{State: StateIdle, MissionID: "MISSION-001", MissionKnown: true, HasCallback: true}

	tests := []struct {
		name        string
		mutate      func(*SubscribeContext)
		wantAllowed bool
		wantCause   error
	}{
		{name: "valid", mutate: func(*SubscribeContext) {}, wantAllowed: true},
		{name: "running", mutate: func(c *SubscribeContext) { c.State = StateRunning }, wantCause: ErrAlreadyStarted},
		{name: "unknown mission", mutate: func(c *SubscribeContext) { c.MissionKnown = false }, wantCause: ErrUnknownMission},
		{name: "no callback", mutate: func(c *SubscribeContext) { c.HasCallback = false }},
		{name: "negative row", mutate: func(c *SubscribeContext) { c.Row = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := valid
			tt.mutate(&ctx)
			result := CanSubscribe(ctx)
			if result.Allowed != tt.wantAllowed {
				t.Fatalf("CanSubscribe().Allowed = %v, want %v (%s)", result.Allowed, tt.wantAllowed, result.Reason)
			}
			if tt.wantCause != nil && !errors.Is(result.Error(), tt.wantCause) {
				t.Errorf("CanSubscribe().Error() = %v, want %v", result.Error(), tt.wantCause)
			}
			if !tt.wantAllowed && result.Reason == "" {
				t.Error("expected a reason when not allowed")
			}
		})
	}
}

func TestValidateInterval(t *testing.T) {
	if err := ValidateInterval(DefaultInterval); err != nil {
		t.Errorf("default interval rejected: %v", err)
	}
	if err := ValidateInterval(MinInterval); err != nil {
		t.Errorf("minimum interval rejected: %v", err)
	}
	if err := ValidateInterval(time.Millisecond); err == nil {
		t.Error("1ms interval accepted")
	}
}
