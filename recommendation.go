package journal

import (
	"time"

	"github.com/etnz/journal/date"
)

// Recommendation is a suggestion followed through its lifecycle.
//
// Body, Context, Rationale and ExpectedOutcome are set at creation and never
// change. Feedback, ActualOutcome and UpdatedAt are set by transitions.
// LessonLearned is derived once, when the recommendation is resolved.
type Recommendation struct {
	ID              string     `json:"id"`
	CreatedAt       time.Time  `json:"createdAt"`
	Body            string     `json:"body"`
	Context         string     `json:"context"`
	Rationale       string     `json:"rationale"`
	ExpectedOutcome string     `json:"expectedOutcome"`
	FollowUpAt      string     `json:"followUpAt,omitempty"`
	Status          Status     `json:"status"`
	Feedback        string     `json:"feedback,omitempty"`
	ActualOutcome   string     `json:"actualOutcome,omitempty"`
	LessonLearned   *string    `json:"lessonLearned"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// FollowUp returns the follow-up instant, if it is set and readable.
// Zone-less values are read in loc.
func (r Recommendation) FollowUp(loc *time.Location) (time.Time, bool) {
	if r.FollowUpAt == "" {
		return time.Time{}, false
	}
	t, err := date.ParseInstant(r.FollowUpAt, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Suggestion holds the free-text fields of a new Recommendation.
type Suggestion struct {
	Body            string
	Context         string
	Rationale       string
	ExpectedOutcome string
	FollowUpAt      time.Time // zero for no follow-up
}
