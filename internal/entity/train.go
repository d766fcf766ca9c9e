package entity

import (
	"github.com/shopspring/decimal"
)

type TrainStatus string

const (
	TrainStatusOnTime    TrainStatus = "ON_TIME"
	TrainStatusDelayed   TrainStatus = "DELAYED"
	TrainStatusSuspended TrainStatus = "SUSPENDED"
)

// Train is immutable reference data. Status may be rewritten by an external
// operations feed; nothing in this service changes it.
type Train struct {
	ID            int64       `json:"id" db:"id"`
	Number        string      `json:"number" db:"number"`
	Name          string      `json:"name" db:"name"`
	FromStationID int64       `json:"from_station_id" db:"from_station_id"`
	ToStationID   int64       `json:"to_station_id" db:"to_station_id"`
	DepartureTime string      `json:"departure_time" db:"departure_time"` // HH:MM, origin-local
	ArrivalTime   string      `json:"arrival_time" db:"arrival_time"`
	Duration      string      `json:"duration" db:"duration"`
	DistanceKM    int         `json:"distance_km" db:"distance_km"`
	RunningDays   RunningDays `json:"running_days" db:"running_days"`
	Status        TrainStatus `json:"status" db:"status"`
}

// TrainClass is one bookable class on one train. Invariants: BaseFare > 0,
// TotalSeats > 0, (TrainID, Code) unique.
type TrainClass struct {
	ID         int64           `json:"id" db:"id"`
	TrainID    int64           `json:"train_id" db:"train_id"`
	Code       string          `json:"code" db:"code"`
	BaseFare   decimal.Decimal `json:"base_fare" db:"base_fare"`
	TotalSeats int             `json:"total_seats" db:"total_seats"`
}

// TrainWithRoute carries a train together with its joined stations and class set.
type TrainWithRoute struct {
	Train
	From    Station      `json:"from"`
	To      Station      `json:"to"`
	Classes []TrainClass `json:"classes"`
}

var travelClassCodes = map[string]struct{}{
	"1A": {}, "2A": {}, "3A": {}, "SL": {}, "CC": {}, "EC": {},
}

// IsTravelClass reports whether code is one of the fixed class codes.
func IsTravelClass(code string) bool {
	_, ok := travelClassCodes[code]
	return ok
}
