package journal

import "fmt"

// Status is the lifecycle state of a Recommendation. It also names the
// partition that owns the record.
type Status int

const (
	Pending Status = iota
	Implemented
	Rejected
	Unknown
)

// Statuses lists all statuses in their persisted order.
var Statuses = []Status{Pending, Implemented, Rejected, Unknown}

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Implemented:
		return "implemented"
	case Rejected:
		return "rejected"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Resolved reports whether s is a terminal status.
func (s Status) Resolved() bool { return s == Implemented || s == Rejected }

func (s Status) valid() bool { return s >= Pending && s <= Unknown }

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "implemented":
		return Implemented, nil
	case "rejected":
		return Rejected, nil
	case "unknown":
		return Unknown, nil
	default:
		return 0, fmt.Errorf("unknown status: %q", s)
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("cannot marshal invalid %v", s)
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
