package mission

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CalendarDate
		wantErr bool
	}{
		{
			name:  "plain",
			input: "01-09-2024",
			want:  CalendarDate{Day: 1, Month: 9, Year: 2024, Hour: 23, Minute: 59},
		},
		{
			name:  "surrounding spaces",
			input: " 31-08-2025 ",
			want:  CalendarDate{Day: 31, Month: 8, Year: 2025, Hour: 23, Minute: 59},
		},
		{
			name:  "leap day",
			input: "29-02-2024",
			want:  CalendarDate{Day: 29, Month: 2, Year: 2024, Hour: 23, Minute: 59},
		},
		{name: "not a leap year", input: "29-02-2023", wantErr: true},
		{name: "month 13", input: "01-13-2024", wantErr: true},
		{name: "day zero", input: "00-01-2024", wantErr: true},
		{name: "31st of april", input: "31-04-2024", wantErr: true},
		{name: "slashes", input: "01/09/2024", wantErr: true},
		{name: "letters", input: "aa-09-2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("ParseDate(%q) error = %v, want ErrInvalidDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCalendarDate_Resolve(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)

	got, err := CalendarDate{Day: 1, Month: 9, Year: 2024, Hour: 23, Minute: 59}.Resolve(loc)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := time.Date(2024, time.September, 1, 21, 59, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestCalendarDate_ResolveRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		date CalendarDate
	}{
		{name: "month 13", date: CalendarDate{Day: 1, Month: 13, Year: 2024}},
		{name: "hour 24", date: CalendarDate{Day: 1, Month: 1, Year: 2024, Hour: 24}},
		{name: "minute 60", date: CalendarDate{Day: 1, Month: 1, Year: 2024, Minute: 60}},
		{name: "year zero", date: CalendarDate{Day: 1, Month: 1, Year: 0}},
		{name: "year before window", date: CalendarDate{Day: 31, Month: 12, Year: MinYear - 1}},
		{name: "year after window", date: CalendarDate{Day: 1, Month: 1, Year: MaxYear + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.date.Resolve(time.UTC)
			var dateErr *DateError
			if !errors.As(err, &dateErr) {
				t.Fatalf("Resolve() error = %v, want *DateError", err)
			}
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Resolve() error does not match ErrInvalidDate")
			}
		})
	}
}

func TestCalendarDate_ResolveNilLocationIsLocal(t *testing.T) {
	date := CalendarDate{Day: 1, Month: 9, Year: 2024, Hour: 23, Minute: 59}
	got, err := date.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := time.Date(2024, time.September, 1, 23, 59, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Resolve(nil) = %v, want %v", got, want)
	}
}

func TestUnix(t *testing.T) {
	got, _ := Unix(1700000000).Resolve(nil)
	if got.Unix() != 1700000000 {
		t.Errorf("Unix().Resolve() = %d, want 1700000000", got.Unix())
	}
}

func TestParseDate_YearWindow(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "01-01-1900"},
		{input: "31-12-2100"},
		{input: "31-12-1899", wantErr: true},
		{input: "01-01-2101", wantErr: true},
		{input: "01-01-1700", wantErr: true},
		{input: "31-12-2999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%q) error does not match ErrInvalidDate", tt.input)
			}
		})
	}
}
