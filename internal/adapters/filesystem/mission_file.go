// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/mclock/internal/ports/secondary"
)

// DefaultMissionFile is the file name looked up when no source is configured.
const DefaultMissionFile = "missions.csv"

// MissionFile implements secondary.MissionSource over a comma-separated file
// with one "Name,DD-MM-YYYY,DD-MM-YYYY" record per line. Commas inside names
// cannot be escaped.
type MissionFile struct {
	path string
}

// NewMissionFile creates a mission file source.
// If path is empty, defaults to ~/.mclock/missions.csv.
func NewMissionFile(path string) (*MissionFile, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".mclock", DefaultMissionFile)
	}
	return &MissionFile{path: path}, nil
}

// Path returns the file the source reads.
func (f *MissionFile) Path() string { return f.path }

// Describe names the source for logs.
func (f *MissionFile) Describe() string { return f.path }

// Records reads the whole file.
func (f *MissionFile) Records(ctx context.Context) ([]secondary.MissionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", secondary.ErrSourceUnavailable, err)
	}
	defer file.Close()

	records, err := ParseRecords(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", secondary.ErrSourceUnavailable, f.path, err)
	}
	return records, nil
}

// ParseRecords splits r into records. Blank lines and lines starting with
// '#' are ignored; every other line is a record whose fields are split on
// ',' and trimmed. Field count is not checked here.
func ParseRecords(r io.Reader) ([]secondary.MissionRecord, error) {
	var records []secondary.MissionRecord

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Split(trimmed, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		records = append(records, secondary.MissionRecord{
			Line:   line,
			Raw:    trimmed,
			Fields: fields,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// WriteRecords writes definitions back out in mission file format.
func WriteRecords(w io.Writer, defs []secondary.MissionDefinition) error {
	bw := bufio.NewWriter(w)
	for _, d := range defs {
		if strings.Contains(d.Name, ",") {
			return fmt.Errorf("mission name %q contains a comma", d.Name)
		}
		if _, err := fmt.Fprintf(bw, "%s,%s,%s\n", d.Name, d.StartDate, d.EndDate); err != nil {
			return err
		}
	}
	return bw.Flush()
}
