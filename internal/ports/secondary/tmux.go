package secondary

// SessionLauncher starts the mission board inside a detached tmux session.
type SessionLauncher interface {
	SessionExists(name string) bool
	StartBoardSession(name, dir, command string) error
	KillSession(name string) error
	AttachInstructions(name string) string
}
