package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period used to group journal entries.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// periodNames holds the adjective and the noun naming each Period.
var periodNames = [...][2]string{
	Daily:     {"daily", "day"},
	Weekly:    {"weekly", "week"},
	Monthly:   {"monthly", "month"},
	Quarterly: {"quarterly", "quarter"},
	Yearly:    {"yearly", "year"},
}

func (p Period) String() string {
	if p < Daily || p > Yearly {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p][0]
}

// Range returns the range of period p that contains d.
func (p Period) Range(d Date) Range { return NewRange(d, p) }

// ParsePeriod accepts both the adjective ("weekly") and the noun ("week"),
// in any case.
func ParsePeriod(s string) (Period, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, names := range periodNames {
		if name == names[0] || name == names[1] {
			return Period(p), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q", s)
}
