package entity

// Station is immutable reference data. Trains and bookings reference stations
// by id and never mutate them.
type Station struct {
	ID    int64  `json:"id" db:"id"`
	Code  string `json:"code" db:"code"`
	Name  string `json:"name" db:"name"`
	City  string `json:"city" db:"city"`
	State string `json:"state" db:"state"`
	Zone  string `json:"zone" db:"zone"`
}
