package journal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestTierOf(t *testing.T) {
	testCases := []struct {
		rate string
		want Tier
	}{
		{"0", NeedsCalibration},
		{"49.9", NeedsCalibration},
		{"50", Good},
		{"69.9", Good},
		{"70", Strong},
		{"100", Strong},
	}
	for _, tc := range testCases {
		if got := TierOf(decimal.RequireFromString(tc.rate)); got != tc.want {
			t.Errorf("TierOf(%s) = %v, want %v", tc.rate, got, tc.want)
		}
	}
}

func TestMostFrequent(t *testing.T) {
	got := mostFrequent([]string{"b", "a", "c", "a", "b", "d", "c"}, 3)
	want := []Count{{"b", 2}, {"a", 2}, {"c", 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mostFrequent() mismatch (-want +got):\n%s", diff)
	}
	if got := mostFrequent(nil, 3); len(got) != 0 {
		t.Errorf("mostFrequent(nil) = %v", got)
	}
}

func TestPrefix(t *testing.T) {
	if got := prefix("héllo wörld, this is long", 7); got != "héllo w" {
		t.Errorf("prefix() = %q", got)
	}
	if got := prefix("short", 20); got != "short" {
		t.Errorf("prefix() = %q", got)
	}
}

func TestReport(t *testing.T) {
	c := newClock("2025-06-15T10:00:00Z")
	tr, _ := newTestTracker(c)

	add := func(context string) string {
		id, err := tr.Add(Suggestion{Body: "b", Context: context})
		if err != nil {
			t.Fatal(err)
		}
		return id
	}
	impl := func(context string) {
		if err := tr.Transition(add(context), Implemented, "", ""); err != nil {
			t.Fatal(err)
		}
	}
	reject := func(feedback string) {
		if err := tr.Transition(add("x"), Rejected, feedback, ""); err != nil {
			t.Fatal(err)
		}
	}

	impl("health")
	impl("focus")
	impl("focus")
	impl("sleep")
	impl("health")
	impl("diet")
	reject("Too much overhead for the benefit")
	reject("Too much overhead for a small team")
	reject("No time")
	reject("")
	add("pending")
	if err := tr.Transition(add("u"), Unknown, "", ""); err != nil {
		t.Fatal(err)
	}

	got := tr.Report()
	want := Summary{
		Total:           12,
		Implemented:     6,
		Rejected:        4,
		Pending:         1,
		Unknown:         1,
		SuccessRate:     decimal.RequireFromString("50"),
		Tier:            Good,
		TopContexts:     []Count{{"health", 2}, {"focus", 2}, {"sleep", 1}},
		CommonRejection: Count{"Too much overhead fo", 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report() mismatch (-want +got):\n%s", diff)
	}
}

func TestReportEmpty(t *testing.T) {
	tr, _ := newTestTracker(newClock("2025-06-15T10:00:00Z"))
	got := tr.Report()
	if got.Total != 0 || !got.SuccessRate.IsZero() || got.Tier != NeedsCalibration {
		t.Errorf("Report() = %+v", got)
	}
	if len(got.TopContexts) != 0 || got.CommonRejection.N != 0 {
		t.Errorf("Report() = %+v, want no contexts and no rejection", got)
	}
}
