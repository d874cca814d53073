package journal

import "errors"

var (
	// ErrNotFound is returned when a record id does not exist in any partition.
	ErrNotFound = errors.New("not found")
	// ErrResolved is returned when transitioning a record that is already
	// implemented or rejected.
	ErrResolved = errors.New("already resolved")
	// ErrDuplicate is returned when a new record would reuse an existing id.
	ErrDuplicate = errors.New("duplicate id")
	// ErrStorage wraps every failure to read or write a backing document.
	ErrStorage = errors.New("storage failure")
)
