package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/example/mclock/internal/ports/secondary"
)

// Ensure mockMissionSource implements the interface
var _ secondary.MissionSource = (*mockMissionSource)(nil)

// mockMissionSource implements secondary.MissionSource for testing.
type mockMissionSource struct {
	records []secondary.MissionRecord
	err     error
	reads   int
}

// newMockMissionSource builds records from CSV-style lines, numbering them
// as the file adapter would.
func newMockMissionSource(lines ...string) *mockMissionSource {
	m := &mockMissionSource{}
	for i, line := range lines {
		m.records = append(m.records, secondary.MissionRecord{
			Line:   i + 1,
			Raw:    line,
			Fields: strings.Split(line, ","),
		})
	}
	return m
}

func (m *mockMissionSource) Records(ctx context.Context) ([]secondary.MissionRecord, error) {
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockMissionSource) Describe() string { return "mock.csv" }

func failingSource() *mockMissionSource {
	return &mockMissionSource{err: fmt.Errorf("open mock.csv: %w", secondary.ErrSourceUnavailable)}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Ensure mockMissionStore implements the interface
var _ secondary.MissionStore = (*mockMissionStore)(nil)

// mockMissionStore implements secondary.MissionStore for testing.
type mockMissionStore struct {
	mockMissionSource
	replaceErr error
	replaced   [][]secondary.MissionDefinition
}

func (m *mockMissionStore) Replace(ctx context.Context, defs []secondary.MissionDefinition) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = append(m.replaced, defs)
	return nil
}

func (m *mockMissionStore) Count(ctx context.Context) (int, error) {
	if len(m.replaced) == 0 {
		return 0, nil
	}
	return len(m.replaced[len(m.replaced)-1]), nil
}
