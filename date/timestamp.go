package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeRE = regexp.MustCompile(`^([+-])(\d+)([dwmqy])$`)

// timestampLayouts are tried in order. The zone-less layouts are interpreted
// in the location of the reference time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp parses s into an instant. It accepts RFC3339 timestamps,
// ISO timestamps without zone (as written by many scripting languages),
// plain dates (midnight), and relative forms like "+7d", "-1w", "+2m", "+1q"
// or "+1y" that are added to now. "0d" means now.
func ParseTimestamp(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if s == "0d" {
		return now, nil
	}

	if match := relativeRE.FindStringSubmatch(s); match != nil {
		n, err := strconv.Atoi(match[2])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid number in relative timestamp %q: %w", s, err)
		}
		if match[1] == "-" {
			n = -n
		}
		switch match[3] {
		case "d":
			return now.AddDate(0, 0, n), nil
		case "w":
			return now.AddDate(0, 0, 7*n), nil
		case "m":
			return now.AddDate(0, n, 0), nil
		case "q":
			return now.AddDate(0, 3*n, 0), nil
		case "y":
			return now.AddDate(n, 0, 0), nil
		}
	}

	t, err := ParseInstant(s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w or a relative form like +7d", err)
	}
	return t, nil
}

// ParseInstant is like ParseTimestamp without the relative forms. Zone-less
// values are read in loc.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if d, err := Parse(s); err == nil {
		return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: want RFC3339 or %q", s, DateFormat)
}
