package journal

import (
	"cmp"
	"slices"
	"time"

	"github.com/etnz/journal/date"
	"github.com/shopspring/decimal"
)

// Digest summarizes a Log over a period.
type Digest struct {
	Range      date.Range
	Total      int     // entries in the whole log
	InRange    int     // entries inside Range
	Categories []Count // all-time entries per category, most frequent first
}

// digest computes the common part of all digests and returns the entries
// falling inside the period containing now.
func digest[E Entry](l *Log[E], now time.Time, p date.Period) (Digest, []E) {
	d := Digest{
		Range: p.Range(date.Of(now)),
		Total: l.stats.Total,
	}
	for _, k := range l.book.Keys() {
		d.Categories = append(d.Categories, Count{Value: k, N: l.stats.Categories[k]})
	}
	slices.SortStableFunc(d.Categories, func(a, b Count) int { return b.N - a.N })

	var in []E
	for _, e := range l.book.All() {
		if d.Range.ContainsTime(e.Time().In(now.Location())) {
			in = append(in, e)
		}
	}
	d.InRange = len(in)
	return d, in
}

// Average is the mean score of an area.
type Average struct {
	Area  string
	Score decimal.Decimal // rounded to one decimal
	N     int
}

// AssessmentDigest summarizes the self-assessment log.
type AssessmentDigest struct {
	Digest
	Averages []Average // per area, over the entries in range
}

// DigestAssessments summarizes assessments over the period containing now.
func DigestAssessments(l *Log[Assessment], now time.Time, p date.Period) AssessmentDigest {
	d, in := digest(l, now, p)
	res := AssessmentDigest{Digest: d}
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var areas []string
	for _, a := range in {
		if counts[a.Area] == 0 {
			areas = append(areas, a.Area)
		}
		sums[a.Area] = sums[a.Area].Add(a.Score)
		counts[a.Area]++
	}
	for _, area := range areas {
		n := counts[area]
		res.Averages = append(res.Averages, Average{
			Area:  area,
			Score: sums[area].Div(decimal.NewFromInt(int64(n))).Round(1),
			N:     n,
		})
	}
	return res
}

// NoteDigest summarizes the knowledge base.
type NoteDigest struct {
	Digest
	Top []Note // most important notes of the whole log
}

// DigestNotes summarizes the knowledge base and keeps the n most important
// notes. Ties keep the oldest note first.
func DigestNotes(l *Log[Note], now time.Time, p date.Period, n int) NoteDigest {
	d, _ := digest(l, now, p)
	notes := l.All()
	slices.SortStableFunc(notes, func(a, b Note) int {
		if c := cmp.Compare(b.Importance, a.Importance); c != 0 {
			return c
		}
		return a.At.Compare(b.At)
	})
	if len(notes) > n {
		notes = notes[:n]
	}
	return NoteDigest{Digest: d, Top: notes}
}

// InsightDigest summarizes the learning log.
type InsightDigest struct {
	Digest
	Streak int       // consecutive days with an insight, ending today or yesterday
	Recent []Insight // insights in range, oldest first
}

// DigestInsights summarizes the learning log over the period containing now.
func DigestInsights(l *Log[Insight], now time.Time, p date.Period) InsightDigest {
	d, in := digest(l, now, p)
	slices.SortStableFunc(in, func(a, b Insight) int { return a.At.Compare(b.At) })

	days := make(map[date.Date]bool)
	for _, i := range l.All() {
		days[date.Of(i.At.In(now.Location()))] = true
	}
	return InsightDigest{Digest: d, Streak: streak(days, date.Of(now)), Recent: in}
}

// streak counts consecutive days in days ending today, or yesterday when
// there is nothing today yet.
func streak(days map[date.Date]bool, today date.Date) int {
	day := today
	if !days[day] {
		day = day.Add(-1)
	}
	n := 0
	for days[day] {
		n++
		day = day.Add(-1)
	}
	return n
}
