package journal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assessment is a self-monitoring entry: a score given to an area of work.
type Assessment struct {
	At    time.Time       `json:"at"`
	Area  string          `json:"area"`
	Score decimal.Decimal `json:"score"`
	Note  string          `json:"note,omitempty"`
}

func (a Assessment) Category() string { return a.Area }
func (a Assessment) Time() time.Time  { return a.At }

// Note is a knowledge base entry worth remembering.
type Note struct {
	At         time.Time `json:"at"`
	Topic      string    `json:"topic"`
	Content    string    `json:"content"`
	Importance int       `json:"importance"`
	Tags       []string  `json:"tags,omitempty"`
}

func (n Note) Category() string { return n.Topic }
func (n Note) Time() time.Time  { return n.At }

// Insight is a learning log entry.
type Insight struct {
	At     time.Time `json:"at"`
	Topic  string    `json:"topic"`
	Lesson string    `json:"lesson"`
	Source string    `json:"source,omitempty"`
}

func (i Insight) Category() string { return i.Topic }
func (i Insight) Time() time.Time  { return i.At }
