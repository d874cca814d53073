package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options configures a Tracker.
type Options struct {
	Store      Store            // required
	Comparison Comparison       // outcome comparison, Lexical by default
	Now        func() time.Time // clock, time.Now by default
	NewID      func() string    // id generator, random UUIDs by default
}

// Stats are the aggregate counters of a Tracker.
type Stats struct {
	Total       int             `json:"total"`
	Implemented int             `json:"implemented"`
	Rejected    int             `json:"rejected"`
	SuccessRate decimal.Decimal `json:"successRate"`
}

// successRate returns implemented/total as a percentage with one decimal.
func successRate(implemented, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(implemented)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
}

// Tracker is a ledger of recommendations partitioned by Status.
//
// Counters are maintained incrementally as records are added and resolved;
// they are never recomputed from the partitions. Every mutation persists the
// whole document before returning.
type Tracker struct {
	store   Store
	compare Comparison
	now     func() time.Time
	newID   func() string

	book  *Book[Recommendation]
	stats Stats
}

// NewTracker creates an empty tracker. Nothing is loaded from the store.
func NewTracker(opts Options) *Tracker {
	t := &Tracker{
		store:   opts.Store,
		compare: opts.Comparison,
		now:     opts.Now,
		newID:   opts.NewID,
		book:    newRecommendationBook(),
	}
	if t.now == nil {
		t.now = time.Now
	}
	if t.newID == nil {
		t.newID = uuid.NewString
	}
	return t
}

func newRecommendationBook() *Book[Recommendation] {
	keys := make([]string, len(Statuses))
	for i, s := range Statuses {
		keys[i] = s.String()
	}
	return NewBook[Recommendation](keys...)
}

// OpenTracker creates a tracker and loads it from its store. A store with
// nothing persisted yet gives an empty tracker.
func OpenTracker(opts Options) (*Tracker, error) {
	t := NewTracker(opts)
	data, err := t.store.Load()
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: %v, starting an empty tracker", err)
		return t, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return t, nil
	}
	if err := t.decode(data); err != nil {
		return nil, fmt.Errorf("could not decode tracker: %w", err)
	}
	return t, nil
}

// Stats returns the current counters.
func (t *Tracker) Stats() Stats { return t.stats }

// Records returns a copy of the records with status s, in insertion order.
func (t *Tracker) Records(s Status) []Recommendation { return t.book.Partition(s.String()) }

// Get returns the record with the given id.
func (t *Tracker) Get(id string) (Recommendation, bool) {
	_, r, ok := t.book.Find(byID(id))
	return r, ok
}

func byID(id string) func(Recommendation) bool {
	return func(r Recommendation) bool { return r.ID == id }
}

// maxIDAttempts bounds the calls to the id generator in Add.
const maxIDAttempts = 3

// uniqueID returns an id from the generator that no record uses yet.
func (t *Tracker) uniqueID() (string, error) {
	var id string
	for range maxIDAttempts {
		id = t.newID()
		if _, _, taken := t.book.Find(byID(id)); !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("recommendation %q: %w", id, ErrDuplicate)
}

// Add records a new pending recommendation and returns its id. If the id
// generator keeps returning ids already in use, the error wraps ErrDuplicate
// and nothing changes.
func (t *Tracker) Add(s Suggestion) (string, error) {
	id, err := t.uniqueID()
	if err != nil {
		return "", err
	}
	r := Recommendation{
		ID:              id,
		CreatedAt:       t.now(),
		Body:            s.Body,
		Context:         s.Context,
		Rationale:       s.Rationale,
		ExpectedOutcome: s.ExpectedOutcome,
		Status:          Pending,
	}
	if !s.FollowUpAt.IsZero() {
		r.FollowUpAt = s.FollowUpAt.Format(time.RFC3339)
	}
	t.book.Append(Pending.String(), r)
	t.stats.Total++
	t.stats.SuccessRate = successRate(t.stats.Implemented, t.stats.Total)
	return r.ID, t.persist()
}

// Transition moves the record id to the partition of status to, recording
// the feedback and actual outcome. Moving to Implemented or Rejected resolves
// the record: the matching counter is incremented and the lesson learned is
// derived. Resolved records cannot be transitioned again.
//
// If id does not exist the error wraps ErrNotFound and nothing changes.
func (t *Tracker) Transition(id string, to Status, feedback, actualOutcome string) error {
	if !to.valid() {
		return fmt.Errorf("cannot transition %q to %v", id, to)
	}
	if _, r, ok := t.book.Find(byID(id)); !ok {
		return fmt.Errorf("recommendation %q: %w", id, ErrNotFound)
	} else if r.Status.Resolved() {
		return fmt.Errorf("recommendation %q is %v: %w", id, r.Status, ErrResolved)
	}

	_, r, _ := t.book.Remove(byID(id))
	now := t.now()
	r.Status = to
	r.Feedback = feedback
	r.ActualOutcome = actualOutcome
	r.UpdatedAt = &now

	switch to {
	case Implemented:
		t.stats.Implemented++
		lesson := t.compare.Judge(actualOutcome, r.ExpectedOutcome).Lesson()
		r.LessonLearned = &lesson
	case Rejected:
		t.stats.Rejected++
		lesson := rejectionLesson(feedback)
		r.LessonLearned = &lesson
	}
	t.book.Append(to.String(), r)
	t.stats.SuccessRate = successRate(t.stats.Implemented, t.stats.Total)
	return t.persist()
}

// DueForFollowUp returns the pending records whose follow-up time is set and
// not after now, in insertion order. Records with an unreadable follow-up
// time are never due.
func (t *Tracker) DueForFollowUp(now time.Time) []Recommendation {
	due := []Recommendation{}
	for _, r := range t.book.Partition(Pending.String()) {
		at, ok := r.FollowUp(now.Location())
		if !ok {
			if r.FollowUpAt != "" {
				log.Printf("warning: recommendation %q has an unreadable follow-up time %q", r.ID, r.FollowUpAt)
			}
			continue
		}
		if !at.After(now) {
			due = append(due, r)
		}
	}
	return due
}

func (t *Tracker) persist() error {
	data, err := t.encode()
	if err != nil {
		return fmt.Errorf("could not encode tracker: %w", err)
	}
	return t.store.Persist(data)
}
