package repository

import "time"

// Visitor represents a visitor row.
type Visitor struct {
	ID          string
	Name        string
	Company     string
	Host        string
	Badge       string
	SignedInAt  time.Time
	SignedOutAt *time.Time
}

// ActivityKind enumerates log event kinds.
const (
	KindCheckIn  = "check_in"
	KindCheckOut = "check_out"
)

// Activity represents one check-in/check-out log row.
type Activity struct {
	ID        string
	VisitorID string
	Kind      string
	At        time.Time
}
