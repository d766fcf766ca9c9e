package service

import (
	"math/rand"
)

type AvailabilityStatus string

const (
	StatusAvailable  AvailabilityStatus = "AVAILABLE"
	StatusRAC        AvailabilityStatus = "RAC"
	StatusWaitlisted AvailabilityStatus = "WAITLISTED"
)

// ClassAvailability is the live availability picture for one class on one
// search request.
type ClassAvailability struct {
	Status      AvailabilityStatus `json:"status"`
	Seats       int                `json:"seats"`
	RACPosition int                `json:"rac_position"`
	Waitlist    int                `json:"waitlist"`
}

// AvailabilityEstimator derives availability from class capacity and a demand
// signal. The current demand signal is a uniform random draw, which is a
// simulation stand-in for a real seat inventory; the estimator exists so the
// draw can be swapped for an inventory reader without touching callers.
// Every call is independent: repeated searches for the same train, class and
// date may disagree.
type AvailabilityEstimator struct {
	intn func(n int) int
}

func NewAvailabilityEstimator() *AvailabilityEstimator {
	// The top-level rand functions are safe for concurrent use, so the
	// estimator needs no locking.
	return &AvailabilityEstimator{intn: rand.Intn}
}

// NewAvailabilityEstimatorWithSource fixes the draw for deterministic tests.
func NewAvailabilityEstimatorWithSource(intn func(n int) int) *AvailabilityEstimator {
	return &AvailabilityEstimator{intn: intn}
}

// Estimate draws a seats-available figure in [0, capacity] and buckets it:
// 11 or more seats is a confirmed-bookable class, 1..10 lands on the RAC
// list, zero lands on the waitlist.
func (e *AvailabilityEstimator) Estimate(capacity int) ClassAvailability {
	available := e.intn(capacity + 1)

	switch {
	case available >= 11:
		return ClassAvailability{Status: StatusAvailable, Seats: available}
	case available >= 1:
		return ClassAvailability{Status: StatusRAC, RACPosition: e.intn(10) + 1}
	default:
		return ClassAvailability{Status: StatusWaitlisted, Waitlist: e.intn(20) + 1}
	}
}
