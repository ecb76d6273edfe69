package application

import (
	"errors"
	"strings"
)

// Status identifies a row of the application_statuses catalog. The integer
// value doubles as the workflow rank: a transition may never move to a
// status with a lower rank than the current one.
type Status int

const (
	StatusSubmitted Status = 1
	StatusInReview  Status = 2
	StatusScreening Status = 3
	StatusRejected  Status = 4
	StatusOfferSent Status = 5
)

var ErrUnknownStatus = errors.New("unknown application status")

var statusNames = map[Status]string{
	StatusSubmitted: "SUBMITTED",
	StatusInReview:  "IN_REVIEW",
	StatusScreening: "SCREENING",
	StatusRejected:  "REJECTED",
	StatusOfferSent: "OFFER_SENT",
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) Name() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return ""
}

func (s Status) Rank() int {
	return int(s)
}

func ParseStatus(name string) (Status, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, ErrUnknownStatus
}

// Statuses returns the catalog in rank order.
func Statuses() []Status {
	return []Status{
		StatusSubmitted,
		StatusInReview,
		StatusScreening,
		StatusRejected,
		StatusOfferSent,
	}
}

// CanTransition reports whether an application currently at from may move
// to target. REJECTED is terminal: only the idempotent self-loop is legal.
// Every other state may move forward or stay in place, never backwards.
func CanTransition(from, target Status) bool {
	if !from.Valid() || !target.Valid() {
		return false
	}
	if from == StatusRejected {
		return target == StatusRejected
	}
	return target.Rank() >= from.Rank()
}
