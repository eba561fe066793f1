package models

import (
	"slices"
	"time"
)

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

// Open reports whether the ticket still needs attention.
func (s Status) Open() bool {
	return s == StatusOpen || s == StatusInProgress
}

// Ticket is a support ticket raised by a member.
type Ticket struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func SortNewestFirst(ts []Ticket) {
	slices.SortStableFunc(ts, func(a, b Ticket) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// CountOpen returns how many tickets still need attention.
func CountOpen(ts []Ticket) int {
	n := 0
	for _, t := range ts {
		if t.Status.Open() {
			n++
		}
	}
	return n
}
