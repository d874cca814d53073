package journal

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Tier buckets a success rate.
type Tier int

const (
	NeedsCalibration Tier = iota // below 50%
	Good                         // 50% and above
	Strong                       // 70% and above
)

func (t Tier) String() string {
	switch t {
	case Strong:
		return "strong"
	case Good:
		return "good"
	default:
		return "needs calibration"
	}
}

// TierOf returns the tier of a success rate expressed in percent.
func TierOf(rate decimal.Decimal) Tier {
	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return Strong
	case rate.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return Good
	default:
		return NeedsCalibration
	}
}

// Count is the number of occurrences of a value.
type Count struct {
	Value string
	N     int
}

// Summary is the structured report of a Tracker.
type Summary struct {
	Total       int
	Implemented int
	Rejected    int
	Pending     int
	Unknown     int
	SuccessRate decimal.Decimal // implemented over total, in percent
	Tier        Tier

	// TopContexts are the most frequent contexts of implemented records.
	TopContexts []Count
	// CommonRejection is the most frequent feedback prefix among rejected
	// records. Its N is zero when no rejected record has feedback.
	CommonRejection Count
}

const (
	topContexts          = 3
	rejectionPrefixRunes = 20
)

// Report computes the summary of the tracker.
func (t *Tracker) Report() Summary {
	s := Summary{
		Total:       t.stats.Total,
		Implemented: t.stats.Implemented,
		Rejected:    t.stats.Rejected,
		Pending:     t.book.Len(Pending.String()),
		Unknown:     t.book.Len(Unknown.String()),
		SuccessRate: t.stats.SuccessRate,
		Tier:        TierOf(t.stats.SuccessRate),
	}

	var contexts []string
	for _, r := range t.Records(Implemented) {
		contexts = append(contexts, r.Context)
	}
	s.TopContexts = mostFrequent(contexts, topContexts)

	var prefixes []string
	for _, r := range t.Records(Rejected) {
		if r.Feedback == "" {
			continue
		}
		prefixes = append(prefixes, prefix(r.Feedback, rejectionPrefixRunes))
	}
	if top := mostFrequent(prefixes, 1); len(top) > 0 {
		s.CommonRejection = top[0]
	}
	return s
}

// mostFrequent returns at most n values by decreasing number of occurrences.
// Ties keep the order in which values were first seen. n < 0 means all.
func mostFrequent(values []string, n int) []Count {
	var counts []Count
	index := make(map[string]int)
	for _, v := range values {
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, Count{Value: v})
		}
		counts[i].N++
	}
	slices.SortStableFunc(counts, func(a, b Count) int { return b.N - a.N })
	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
