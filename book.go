package journal

import (
	"iter"
	"slices"
)

// Book is an ordered set of named partitions, each holding records in
// insertion order. Partitions are kept in the order they were declared or
// first appended to.
type Book[R any] struct {
	keys  []string
	parts map[string][]R
}

// NewBook creates an empty book with the given partitions declared.
func NewBook[R any](keys ...string) *Book[R] {
	b := &Book[R]{parts: make(map[string][]R)}
	for _, k := range keys {
		b.declare(k)
	}
	return b
}

func (b *Book[R]) declare(key string) {
	if _, ok := b.parts[key]; ok {
		return
	}
	b.keys = append(b.keys, key)
	b.parts[key] = []R{}
}

// Keys returns partition names in order.
func (b *Book[R]) Keys() []string { return slices.Clone(b.keys) }

// Append adds r at the end of the partition key, creating it if needed.
func (b *Book[R]) Append(key string, r R) {
	b.declare(key)
	b.parts[key] = append(b.parts[key], r)
}

// Partition returns a copy of the records in partition key.
func (b *Book[R]) Partition(key string) []R {
	p := b.parts[key]
	if p == nil {
		return []R{}
	}
	return slices.Clone(p)
}

// Len returns the number of records in partition key.
func (b *Book[R]) Len(key string) int { return len(b.parts[key]) }

// Size returns the number of records in all partitions.
func (b *Book[R]) Size() (n int) {
	for _, p := range b.parts {
		n += len(p)
	}
	return n
}

// Find returns the first record matching, scanning partitions in order.
func (b *Book[R]) Find(match func(R) bool) (key string, r R, ok bool) {
	for k, v := range b.All() {
		if match(v) {
			return k, v, true
		}
	}
	return "", r, false
}

// Remove deletes the first record matching and returns it with the
// partition it was removed from. Remaining records keep their order.
func (b *Book[R]) Remove(match func(R) bool) (key string, r R, ok bool) {
	for _, k := range b.keys {
		p := b.parts[k]
		if i := slices.IndexFunc(p, match); i >= 0 {
			r = p[i]
			b.parts[k] = slices.Delete(p, i, i+1)
			return k, r, true
		}
	}
	return "", r, false
}

// All iterates over every record, partition by partition.
func (b *Book[R]) All() iter.Seq2[string, R] {
	return func(yield func(string, R) bool) {
		for _, k := range b.keys {
			for _, r := range b.parts[k] {
				if !yield(k, r) {
					return
				}
			}
		}
	}
}
