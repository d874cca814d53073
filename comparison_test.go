package journal

import "testing"

func TestComparisonJudge(t *testing.T) {
	testCases := []struct {
		name     string
		c        Comparison
		actual   string
		expected string
		want     Verdict
	}{
		{"lexical equal", Lexical, "2h saved", "2h saved", Accurate},
		{"lexical greater", Lexical, "b", "a", Underestimated},
		{"lexical smaller", Lexical, "a", "b", Overestimated},
		{"lexical is not numeric", Lexical, "12", "9", Overestimated},
		{"numeric greater", Numeric, "12", "9", Underestimated},
		{"numeric equal values", Numeric, "1.50", "1.5", Accurate},
		{"numeric percent", Numeric, " 20% ", "15%", Underestimated},
		{"numeric smaller", Numeric, "-3", "2", Overestimated},
		{"numeric falls back to lexical", Numeric, "faster", "slower", Overestimated},
		{"numeric half parsable", Numeric, "12", "a lot", Overestimated},
		{"exact equal", Exact, "same", "same", Accurate},
		{"exact different", Exact, "12", "9", Missed},
		{"empty outcomes", Lexical, "", "", Accurate},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Judge(tc.actual, tc.expected); got != tc.want {
				t.Errorf("%v.Judge(%q, %q) = %v, want %v", tc.c, tc.actual, tc.expected, got, tc.want)
			}
		})
	}
}

func TestParseComparison(t *testing.T) {
	for _, c := range []Comparison{Lexical, Numeric, Exact} {
		got, err := ParseComparison(c.String())
		if err != nil {
			t.Fatalf("ParseComparison(%q) unexpected error: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseComparison(%q) = %v", c, got)
		}
	}
	if _, err := ParseComparison("fuzzy"); err == nil {
		t.Error("ParseComparison(fuzzy) expected an error")
	}
}

func TestTrackerUsesComparison(t *testing.T) {
	c := newClock("2025-06-15T10:00:00Z")
	for _, tc := range []struct {
		c    Comparison
		want Verdict
	}{
		{Lexical, Overestimated},
		{Numeric, Underestimated},
		{Exact, Missed},
	} {
		tr := NewTracker(Options{Store: &MemStore{}, Comparison: tc.c, Now: c.Now})
		id, _ := tr.Add(Suggestion{ExpectedOutcome: "9"})
		if err := tr.Transition(id, Implemented, "", "12"); err != nil {
			t.Fatal(err)
		}
		r, _ := tr.Get(id)
		if *r.LessonLearned != tc.want.Lesson() {
			t.Errorf("%v: LessonLearned = %q, want %q", tc.c, *r.LessonLearned, tc.want.Lesson())
		}
	}
}
