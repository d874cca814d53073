package date

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{
		"day": Daily, "daily": Daily, "Week": Weekly, "month": Monthly,
		"quarterly": Quarterly, "YEAR": Yearly,
	} {
		got, err := ParsePeriod(in)
		if err != nil {
			t.Errorf("ParsePeriod(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(fortnight) expected an error")
	}
	if got, err := ParsePeriod(" monthly "); err != nil || got != Monthly {
		t.Errorf("ParsePeriod(\" monthly \") = %v, %v, want monthly", got, err)
	}
}

func TestPeriodString(t *testing.T) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		got, err := ParsePeriod(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v", p.String(), got, err, p)
		}
	}
	if got := Period(9).String(); got != "Period(9)" {
		t.Errorf("Period(9).String() = %q", got)
	}
}

func TestRangeIdentifier(t *testing.T) {
	d := New(2025, time.September, 10)
	testCases := []struct {
		period Period
		want   string
	}{
		{Daily, "2025-09-10"},
		{Weekly, "2025-W37"},
		{Monthly, "2025-09"},
		{Quarterly, "2025-Q3"},
		{Yearly, "2025"},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			r := tc.period.Range(d)
			if got := r.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
			if p, ok := r.Period(); !ok || p != tc.period {
				t.Errorf("Period() = %v, %v, want %v, true", p, ok, tc.period)
			}
		})
	}

	custom := Range{From: New(2025, time.September, 2), To: New(2025, time.September, 5)}
	if got, want := custom.Identifier(), "2025-09-02_2025-09-05"; got != want {
		t.Errorf("Identifier() = %q, want %q", got, want)
	}
}

func TestRangeContains(t *testing.T) {
	r := Monthly.Range(New(2025, time.March, 12))
	if !r.Contains(New(2025, time.March, 1)) || !r.Contains(New(2025, time.March, 31)) {
		t.Error("range should include its boundaries")
	}
	if r.Contains(New(2025, time.April, 1)) {
		t.Error("range should not include the next month")
	}
	if !r.ContainsTime(time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)) {
		t.Error("ContainsTime should use the calendar day")
	}
}
