package filters

import (
	"encoding/json"
	"fmt"
	"time"
)

// PeriodLayout is the calendar-month format all period bounds use.
const PeriodLayout = "2006-01"

// Period is a calendar month used as an inclusive filter bound.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a YYYY-MM period string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(PeriodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("expected YYYY-MM, got %q", s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Start returns the first instant of the period's month (UTC).
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the period's month (UTC), making the period an
// inclusive upper bound on date-valued columns.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Compare orders two periods chronologically: -1, 0, or 1.
func (p Period) Compare(other Period) int {
	switch {
	case p.Year != other.Year:
		if p.Year < other.Year {
			return -1
		}
		return 1
	case p.Month != other.Month:
		if p.Month < other.Month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (p Period) String() string {
	return p.Start().Format(PeriodLayout)
}

// MarshalJSON encodes the period as a YYYY-MM string.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes and validates a YYYY-MM string.
func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
