package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"
)

// Entry is a timestamped record filed under a category.
type Entry interface {
	Category() string
	Time() time.Time
}

// LogStats are the aggregate counters of a Log.
type LogStats struct {
	Total      int
	Categories map[string]int
}

// Log is a journal of entries partitioned by category. Categories are kept in
// the order they first appeared.
type Log[E Entry] struct {
	store Store
	book  *Book[E]
	stats LogStats
}

// NewLog creates an empty log persisted to store.
func NewLog[E Entry](store Store) *Log[E] {
	return &Log[E]{
		store: store,
		book:  NewBook[E](),
		stats: LogStats{Categories: make(map[string]int)},
	}
}

// OpenLog creates a log and loads it from its store. A store with nothing
// persisted yet gives an empty log.
func OpenLog[E Entry](store Store) (*Log[E], error) {
	l := NewLog[E](store)
	data, err := store.Load()
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: %v, starting an empty log", err)
		return l, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return l, nil
	}
	if err := l.decode(data); err != nil {
		return nil, fmt.Errorf("could not decode log: %w", err)
	}
	return l, nil
}

// Add files e under its category and persists the log.
func (l *Log[E]) Add(e E) error {
	l.book.Append(e.Category(), e)
	l.stats.Total++
	l.stats.Categories[e.Category()]++
	return l.persist()
}

// Categories returns the category names in first-seen order.
func (l *Log[E]) Categories() []string { return l.book.Keys() }

// Entries returns a copy of the entries of a category, oldest first.
func (l *Log[E]) Entries(category string) []E { return l.book.Partition(category) }

// All returns every entry, category by category.
func (l *Log[E]) All() []E {
	var all []E
	for _, e := range l.book.All() {
		all = append(all, e)
	}
	return all
}

// Stats returns a copy of the counters.
func (l *Log[E]) Stats() LogStats {
	s := LogStats{Total: l.stats.Total, Categories: make(map[string]int, len(l.stats.Categories))}
	for k, v := range l.stats.Categories {
		s.Categories[k] = v
	}
	return s
}

func (l *Log[E]) persist() error {
	data, err := l.encode()
	if err != nil {
		return fmt.Errorf("could not encode log: %w", err)
	}
	return l.store.Persist(data)
}

// encode writes {"categories": {...}, "stats": {"total": n, "categories": {...}}}
// with categories in first-seen order.
func (l *Log[E]) encode() ([]byte, error) {
	var categories, counts jsonObjectWriter
	for _, k := range l.book.Keys() {
		categories.Append(k, l.book.Partition(k))
		counts.Append(k, l.stats.Categories[k])
	}
	var stats jsonObjectWriter
	stats.Append("total", l.stats.Total)
	stats.Append("categories", &counts)

	var doc jsonObjectWriter
	doc.Append("categories", &categories)
	doc.Append("stats", &stats)
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return indent(raw)
}

func (l *Log[E]) decode(data []byte) error {
	var doc struct {
		Categories json.RawMessage `json:"categories"`
		Stats      struct {
			Total      int            `json:"total"`
			Categories map[string]int `json:"categories"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	l.book = NewBook[E]()
	if len(doc.Categories) > 0 {
		err := decodeOrderedObject(doc.Categories, func(key string, raw json.RawMessage) error {
			var entries []E
			if err := json.Unmarshal(raw, &entries); err != nil {
				return fmt.Errorf("category %q: %w", key, err)
			}
			l.book.declare(key)
			for _, e := range entries {
				l.book.Append(key, e)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	l.stats = LogStats{Total: doc.Stats.Total, Categories: doc.Stats.Categories}
	if l.stats.Categories == nil {
		l.stats.Categories = make(map[string]int)
	}
	return nil
}
