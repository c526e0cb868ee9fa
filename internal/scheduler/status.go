package scheduler

import (
	"fmt"

	"github.com/alexanderramin/prodplan/internal/domain"
)

// DueSoonDays is the last day count still considered "due soon".
const DueSoonDays = 2

// Status is the classification of a plan's days until production.
type Status struct {
	Bucket domain.StatusBucket
	// Magnitude is the number of days overdue for late plans and the
	// number of days remaining otherwise.
	Magnitude int
}

// ClassifyStatus maps a signed day count to its status bucket.
func ClassifyStatus(days int) Status {
	switch {
	case days < 0:
		return Status{Bucket: domain.StatusLate, Magnitude: -days}
	case days == 0:
		return Status{Bucket: domain.StatusDueToday}
	case days <= DueSoonDays:
		return Status{Bucket: domain.StatusDueSoon, Magnitude: days}
	default:
		return Status{Bucket: domain.StatusOnTrack, Magnitude: days}
	}
}

// Label returns a short human-readable description.
func (s Status) Label() string {
	switch s.Bucket {
	case domain.StatusLate:
		return fmt.Sprintf("late by %dd", s.Magnitude)
	case domain.StatusDueToday:
		return "due today"
	case domain.StatusDueSoon:
		return fmt.Sprintf("due in %dd", s.Magnitude)
	case domain.StatusOnTrack:
		return fmt.Sprintf("on track (%dd)", s.Magnitude)
	default:
		return string(s.Bucket)
	}
}
