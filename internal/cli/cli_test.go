package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/mclock/internal/config"
)

func tempGetwd(dir string) getwdFunc {
	return func() (string, error) { return dir, nil }
}

func failGetwd() (string, error) {
	return "", errors.New("simulated getwd failure")
}

func writeMissionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "missions.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(source string) *config.Config {
	cfg := config.Default()
	cfg.Source = source
	cfg.NoColor = true
	return cfg
}

// TestCommandStructure verifies every command carries metadata and its flags.
func TestCommandStructure(t *testing.T) {
	cmds := map[string][]string{
		"watch":   {"source", "source-kind", "strict", "no-color", "interval"},
		"list":    {"source", "strict"},
		"show":    {"source"},
		"import":  {"strict"},
		"export":  {},
		"init":    {"force", "source"},
		"session": {"name", "kill", "source"},
	}
	for _, cmd := range Commands() {
		flags, ok := cmds[cmd.Name()]
		if !ok {
			t.Errorf("unexpected command %q", cmd.Name())
			continue
		}
		if cmd.Short == "" {
			t.Errorf("%s should have a Short description", cmd.Name())
		}
		for _, f := range flags {
			if cmd.Flags().Lookup(f) == nil {
				t.Errorf("%s should have --%s", cmd.Name(), f)
			}
		}
		delete(cmds, cmd.Name())
	}
	for name := range cmds {
		t.Errorf("command %q not registered", name)
	}
}

func TestLoadConfig_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.TickInterval = 5 * time.Second
	if err := config.SaveConfig(dir, cfg); err != nil {
		t.Fatal(err)
	}

	cmd := WatchCmd()
	cmd.Flags().Set("interval", "250ms")
	cmd.Flags().Set("source", "/tmp/other.csv")
	cmd.Flags().Set("strict", "true")

	got, err := loadConfig(cmd, tempGetwd(dir))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if got.TickInterval != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", got.TickInterval)
	}
	if got.Source != "/tmp/other.csv" {
		t.Errorf("expected flag source, got %q", got.Source)
	}
	if got.ParsePolicy != "strict" {
		t.Errorf("expected strict, got %q", got.ParsePolicy)
	}
}

func TestLoadConfig_RejectsShortInterval(t *testing.T) {
	cmd := WatchCmd()
	cmd.Flags().Set("interval", "1ms")

	if _, err := loadConfig(cmd, tempGetwd(t.TempDir())); err == nil {
		t.Error("expected interval validation error")
	}
}

func TestLoadConfig_GetwdError(t *testing.T) {
	_, err := loadConfig(ListCmd(), failGetwd)
	if err == nil || !strings.HasPrefix(err.Error(), "failed to get working directory") {
		t.Errorf("expected getwd error, got %v", err)
	}
}

func TestRunList(t *testing.T) {
	source := writeMissionFile(t, "# board\nFar,01-01-2000,31-12-2099\n\nNear,01-01-2000,31-12-2098\nbroken\n")
	var out bytes.Buffer

	if err := runList(context.Background(), testConfig(source), &out, io.Discard); err != nil {
		t.Fatalf("runList failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Skipped") {
		t.Errorf("expected skipped record report, got:\n%s", output)
	}
	near, far := strings.Index(output, "Near"), strings.Index(output, "Far")
	if near < 0 || far < 0 || near > far {
		t.Errorf("expected Near before Far, got:\n%s", output)
	}
	if !strings.Contains(output, "31/12/99") {
		t.Errorf("expected rendered end date, got:\n%s", output)
	}
}

func TestRunList_MissingSource(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "absent.csv"))

	if err := runList(context.Background(), cfg, io.Discard, io.Discard); err == nil {
		t.Error("expected error for missing mission file")
	}
}

// cancelOnWrite cancels the watch once the first frame has been written.
type cancelOnWrite struct {
	buf    bytes.Buffer
	cancel context.CancelFunc
}

func (w *cancelOnWrite) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	w.cancel()
	return n, err
}

func (w *cancelOnWrite) String() string { return w.buf.String() }

func TestRunWatch_StopsOnCancel(t *testing.T) {
	source := writeMissionFile(t, "Far,01-01-2000,31-12-2099\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &cancelOnWrite{cancel: cancel}

	if err := runWatch(ctx, testConfig(source), out, io.Discard); err != nil {
		t.Fatalf("runWatch failed: %v", err)
	}
	if !strings.Contains(out.String(), "Far") {
		t.Errorf("expected the immediate first frame, got:\n%s", out.String())
	}
	if ctx.Err() == nil {
		t.Error("expected the watch to end through cancellation")
	}
}

func TestRunWatch_CancelledBeforeLoad(t *testing.T) {
	source := writeMissionFile(t, "Far,01-01-2000,31-12-2099\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runWatch(ctx, testConfig(source), io.Discard, io.Discard)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if strings.Count(err.Error(), "failed to load missions") != 1 {
		t.Errorf("expected a single load prefix, got %q", err.Error())
	}
}

func TestRunImportAndExport(t *testing.T) {
	source := writeMissionFile(t, "Thesis,01-02-2024,30-04-2024\nbad line\nLaunch,01-01-2024,02-03-2024\n")
	cfg := testConfig("")
	cfg.DBPath = filepath.Join(t.TempDir(), "mclock.db")

	var out bytes.Buffer
	if err := runImport(context.Background(), cfg, source, &out, io.Discard); err != nil {
		t.Fatalf("runImport failed: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 2 missions") {
		t.Errorf("expected import summary, got %q", out.String())
	}

	out.Reset()
	if err := runExport(context.Background(), cfg, &out); err != nil {
		t.Fatalf("runExport failed: %v", err)
	}
	want := "Thesis,01-02-2024,30-04-2024\nLaunch,01-01-2024,02-03-2024\n"
	if out.String() != want {
		t.Errorf("expected export %q, got %q", want, out.String())
	}
}

func TestInitRunE(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := initRunE(tempGetwd(dir), &out, "/data/missions.csv", false); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Source != "/data/missions.csv" {
		t.Errorf("expected recorded source, got %q", cfg.Source)
	}

	if err := initRunE(tempGetwd(dir), &out, "", false); err == nil {
		t.Error("expected error when config exists")
	}
	if err := initRunE(tempGetwd(dir), &out, "", true); err != nil {
		t.Errorf("expected --force to overwrite, got %v", err)
	}
}

// mockLauncher implements secondary.SessionLauncher for testing
type mockLauncher struct {
	existing map[string]bool
	startErr error
	started  []string
	commands []string
	killed   []string
}

func (m *mockLauncher) SessionExists(name string) bool { return m.existing[name] }

func (m *mockLauncher) StartBoardSession(name, dir, command string) error {
	if m.startErr != nil {
		return m.startErr
	}
	m.started = append(m.started, name)
	m.commands = append(m.commands, command)
	return nil
}

func (m *mockLauncher) KillSession(name string) error {
	if !m.existing[name] {
		return errors.New("session not found")
	}
	m.killed = append(m.killed, name)
	return nil
}

func (m *mockLauncher) AttachInstructions(name string) string {
	return "tmux attach -t " + name + "\n"
}

func TestSessionRunE(t *testing.T) {
	tests := []struct {
		name        string
		launcher    *mockLauncher
		opts        sessionOptions
		wantErr     bool
		wantStarted bool
		wantOutput  string
	}{
		{
			name:        "starts new session",
			launcher:    &mockLauncher{},
			opts:        sessionOptions{name: "mclock", binary: "/usr/bin/mclock", source: "/data/m.csv"},
			wantStarted: true,
			wantOutput:  "Board running in tmux session mclock",
		},
		{
			name:       "reports running session",
			launcher:   &mockLauncher{existing: map[string]bool{"mclock": true}},
			opts:       sessionOptions{name: "mclock", binary: "/usr/bin/mclock"},
			wantOutput: "already running",
		},
		{
			name:     "start failure",
			launcher: &mockLauncher{startErr: errors.New("no server")},
			opts:     sessionOptions{name: "mclock", binary: "/usr/bin/mclock"},
			wantErr:  true,
		},
		{
			name:       "kill",
			launcher:   &mockLauncher{existing: map[string]bool{"board": true}},
			opts:       sessionOptions{name: "board", kill: true},
			wantOutput: "Session board stopped",
		},
		{
			name:     "kill missing",
			launcher: &mockLauncher{},
			opts:     sessionOptions{name: "board", kill: true},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := sessionRunE(tt.launcher, tempGetwd(t.TempDir()), &out, tt.opts)

			if (err != nil) != tt.wantErr {
				t.Fatalf("sessionRunE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if started := len(tt.launcher.started) > 0; started != tt.wantStarted {
				t.Errorf("expected started=%v, got %v", tt.wantStarted, started)
			}
			if tt.wantOutput != "" && !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("expected output to contain %q, got %q", tt.wantOutput, out.String())
			}
		})
	}
}

func TestWatchCommand(t *testing.T) {
	got := watchCommand("/opt/my tools/mclock", "/data/it's.csv")
	want := `'/opt/my tools/mclock' watch --source '/data/it'\''s.csv'`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	if got := watchCommand("/usr/bin/mclock", ""); got != "'/usr/bin/mclock' watch" {
		t.Errorf("unexpected command without source: %s", got)
	}
}
