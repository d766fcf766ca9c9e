package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// MaxPassengersPerBooking caps one PNR at six passengers.
const MaxPassengersPerBooking = 6

// Booking is one ledger entry keyed by PNR. Status only ever moves
// CONFIRMED -> CANCELLED, and the row is never deleted.
type Booking struct {
	ID            int64           `json:"id" db:"id"`
	PNR           string          `json:"pnr" db:"pnr"`
	TrainID       int64           `json:"train_id" db:"train_id"`
	JourneyDate   CivilDate       `json:"journey_date" db:"journey_date"`
	FromStationID int64           `json:"from_station_id" db:"from_station_id"`
	ToStationID   int64           `json:"to_station_id" db:"to_station_id"`
	TravelClass   string          `json:"travel_class" db:"travel_class"`
	Quota         string          `json:"quota" db:"quota"`
	TotalFare     decimal.Decimal `json:"total_fare" db:"total_fare"`
	Status        BookingStatus   `json:"status" db:"status"`
	ContactEmail  string          `json:"contact_email" db:"contact_email"`
	ContactPhone  string          `json:"contact_phone" db:"contact_phone"`
	PaymentMethod string          `json:"payment_method,omitempty" db:"payment_method"`
	PaymentRef    string          `json:"payment_ref,omitempty" db:"payment_ref"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`

	// Joined, insertion order.
	Passengers []Passenger `json:"passengers,omitempty"`
}

// Passenger belongs to exactly one booking. BookingStatus and CurrentStatus
// hold the allocation string ("CNF/B3/31", "RAC 2") assigned at booking time
// and are not mutated afterward; chart preparation is out of scope.
type Passenger struct {
	ID              int64  `json:"id" db:"id"`
	BookingID       int64  `json:"booking_id" db:"booking_id"`
	Seq             int    `json:"seq" db:"seq"`
	Name            string `json:"name" db:"name"`
	Age             int    `json:"age" db:"age"`
	Gender          string `json:"gender" db:"gender"`
	BerthPreference string `json:"berth_preference,omitempty" db:"berth_preference"`
	Concession      string `json:"concession" db:"concession"`
	BookingStatus   string `json:"booking_status" db:"booking_status"`
	CurrentStatus   string `json:"current_status" db:"current_status"`
}
