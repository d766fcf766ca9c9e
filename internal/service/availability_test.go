package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedDraws feeds a scripted sequence of draws to the estimator.
func fixedDraws(values ...int) func(n int) int {
	i := 0
	return func(n int) int {
		v := values[i%len(values)]
		i++
		return v % n
	}
}

func TestEstimate_Available(t *testing.T) {
	e := NewAvailabilityEstimatorWithSource(fixedDraws(42))

	got := e.Estimate(72)

	assert.Equal(t, StatusAvailable, got.Status)
	assert.Equal(t, 42, got.Seats)
	assert.Zero(t, got.RACPosition)
	assert.Zero(t, got.Waitlist)
}

func TestEstimate_AvailableBoundary(t *testing.T) {
	// 11 seats is the lowest draw that still reads as available.
	e := NewAvailabilityEstimatorWithSource(fixedDraws(11))

	got := e.Estimate(72)

	assert.Equal(t, StatusAvailable, got.Status)
	assert.Equal(t, 11, got.Seats)
}

func TestEstimate_RAC(t *testing.T) {
	// First draw lands in 1..10, second draw ranks the RAC position.
	e := NewAvailabilityEstimatorWithSource(fixedDraws(10, 3))

	got := e.Estimate(72)

	assert.Equal(t, StatusRAC, got.Status)
	assert.Equal(t, 4, got.RACPosition)
	assert.Zero(t, got.Seats)
}

func TestEstimate_Waitlisted(t *testing.T) {
	e := NewAvailabilityEstimatorWithSource(fixedDraws(0, 7))

	got := e.Estimate(72)

	assert.Equal(t, StatusWaitlisted, got.Status)
	assert.Equal(t, 8, got.Waitlist)
	assert.Zero(t, got.Seats)
}

func TestEstimate_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewAvailabilityEstimatorWithSource(rng.Intn)

	capacities := []int{24, 48, 64, 72}
	for i := 0; i < 5000; i++ {
		capacity := capacities[i%len(capacities)]
		got := e.Estimate(capacity)

		switch got.Status {
		case StatusAvailable:
			assert.GreaterOrEqual(t, got.Seats, 11)
			assert.LessOrEqual(t, got.Seats, capacity)
		case StatusRAC:
			assert.GreaterOrEqual(t, got.RACPosition, 1)
			assert.LessOrEqual(t, got.RACPosition, 10)
		case StatusWaitlisted:
			assert.GreaterOrEqual(t, got.Waitlist, 1)
			assert.LessOrEqual(t, got.Waitlist, 20)
		default:
			t.Fatalf("unexpected status %q", got.Status)
		}
	}
}

func TestEstimate_TinyCapacityNeverAvailable(t *testing.T) {
	// A 10-seat class can never draw 11 seats, so it is always RAC or WL.
	rng := rand.New(rand.NewSource(2))
	e := NewAvailabilityEstimatorWithSource(rng.Intn)

	for i := 0; i < 1000; i++ {
		got := e.Estimate(10)
		assert.NotEqual(t, StatusAvailable, got.Status)
	}
}
