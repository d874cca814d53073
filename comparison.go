package journal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Comparison is the strategy used to compare an actual outcome with the
// expected one when a recommendation is implemented. Outcomes are free text,
// so whether "12" is greater than "9" depends on the chosen strategy.
type Comparison int

const (
	// Lexical compares outcomes as strings, byte by byte.
	Lexical Comparison = iota
	// Numeric compares outcomes as decimal numbers when both parse (an optional
	// trailing % is ignored), and falls back to Lexical otherwise.
	Numeric
	// Exact only tells equal outcomes from different ones.
	Exact
)

func (c Comparison) String() string {
	switch c {
	case Lexical:
		return "lexical"
	case Numeric:
		return "numeric"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// ParseComparison parses a string into a Comparison.
func ParseComparison(s string) (Comparison, error) {
	switch s {
	case "lexical":
		return Lexical, nil
	case "numeric":
		return Numeric, nil
	case "exact":
		return Exact, nil
	default:
		return 0, fmt.Errorf("unknown comparison: %q", s)
	}
}

// Verdict is the outcome of comparing an actual outcome with the expected one.
type Verdict int

const (
	Accurate       Verdict = iota // actual == expected
	Underestimated                // actual > expected
	Overestimated                 // actual < expected
	Missed                        // actual != expected, without ordering
)

// Judge compares actual with expected.
func (c Comparison) Judge(actual, expected string) Verdict {
	var cmp int
	switch c {
	case Exact:
		if actual == expected {
			return Accurate
		}
		return Missed
	case Numeric:
		a, errA := parseOutcome(actual)
		e, errE := parseOutcome(expected)
		if errA == nil && errE == nil {
			cmp = a.Cmp(e)
			break
		}
		cmp = strings.Compare(actual, expected)
	default:
		cmp = strings.Compare(actual, expected)
	}
	switch {
	case cmp == 0:
		return Accurate
	case cmp > 0:
		return Underestimated
	default:
		return Overestimated
	}
}

func parseOutcome(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	return decimal.NewFromString(s)
}

// Lesson returns the lesson learned for an implemented recommendation.
func (v Verdict) Lesson() string {
	switch v {
	case Accurate:
		return "Accurate prediction: the actual outcome matched the expected outcome."
	case Underestimated:
		return "Underestimated impact: the actual outcome exceeded the expected outcome."
	case Overestimated:
		return "Overestimated impact: the actual outcome fell short of the expected outcome."
	case Missed:
		return "Missed prediction: the actual outcome differed from the expected outcome."
	default:
		return ""
	}
}

// noFeedback stands for the rejection reason when none was given.
const noFeedback = "no feedback given"

// rejectionLesson returns the lesson learned for a rejected recommendation.
func rejectionLesson(feedback string) string {
	if strings.TrimSpace(feedback) == "" {
		feedback = noFeedback
	}
	return "Rejected: " + feedback
}
