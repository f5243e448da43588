package filters_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/manyara-labs/aerolens/internal/filters"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    filters.Period
		wantErr bool
	}{
		{
			name:  "valid month",
			input: "2023-05",
			want:  filters.Period{Year: 2023, Month: time.May},
		},
		{
			name:  "valid january",
			input: "1999-01",
			want:  filters.Period{Year: 1999, Month: time.January},
		},
		{
			name:    "month out of range",
			input:   "2023-13",
			wantErr: true,
		},
		{
			name:    "missing month",
			input:   "2023",
			wantErr: true,
		},
		{
			name:    "full date",
			input:   "2023-05-01",
			wantErr: true,
		},
		{
			name:    "not a period",
			input:   "may 2023",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filters.ParsePeriod(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePeriod(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriod(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPeriodBounds(t *testing.T) {
	p := filters.Period{Year: 2023, Month: time.February}

	if got, want := p.Start(), time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Start() = %v, want %v", got, want)
	}
	if got, want := p.End(), time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("End() = %v, want %v", got, want)
	}
}

func TestPeriodEndLeapYear(t *testing.T) {
	p := filters.Period{Year: 2024, Month: time.February}
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if got := p.End(); !got.Equal(want) {
		t.Errorf("End() = %v, want %v", got, want)
	}
}

func TestPeriodCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b filters.Period
		want int
	}{
		{
			name: "earlier year",
			a:    filters.Period{Year: 2022, Month: time.December},
			b:    filters.Period{Year: 2023, Month: time.January},
			want: -1,
		},
		{
			name: "same year earlier month",
			a:    filters.Period{Year: 2023, Month: time.March},
			b:    filters.Period{Year: 2023, Month: time.July},
			want: -1,
		},
		{
			name: "equal",
			a:    filters.Period{Year: 2023, Month: time.July},
			b:    filters.Period{Year: 2023, Month: time.July},
			want: 0,
		},
		{
			name: "later",
			a:    filters.Period{Year: 2024, Month: time.January},
			b:    filters.Period{Year: 2023, Month: time.December},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPeriodJSONRoundTrip(t *testing.T) {
	p := filters.Period{Year: 2023, Month: time.May}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2023-05"` {
		t.Errorf("marshal = %s, want \"2023-05\"", data)
	}

	var decoded filters.Period
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded != p {
		t.Errorf("round trip = %v, want %v", decoded, p)
	}
}

func TestPeriodUnmarshalInvalid(t *testing.T) {
	var p filters.Period
	if err := json.Unmarshal([]byte(`"2023-5"`), &p); err == nil {
		t.Error("unmarshal of 2023-5 succeeded, want error")
	}
}
