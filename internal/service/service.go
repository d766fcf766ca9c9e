package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

// TrainService covers the read side: journey search and station reference data.
type TrainService interface {
	SearchTrains(ctx context.Context, req *SearchTrainsRequest) ([]*TrainSearchResult, error)
	ListStations(ctx context.Context, query string) ([]*entity.Station, error)
}

// BookingService covers the booking ledger lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResponse, error)
	GetPNRStatus(ctx context.Context, pnr string) (*PNRStatusResponse, error)
	CancelBooking(ctx context.Context, pnr, email string) (*CancelBookingResponse, error)
}

// SearchTrainsRequest identifies a journey by station codes and a civil date.
type SearchTrainsRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
	Date string `form:"date" binding:"required"`
}

// ClassOffering is one bookable class on one search result, enriched with a
// live availability estimate.
type ClassOffering struct {
	Fare        decimal.Decimal    `json:"fare"`
	Status      AvailabilityStatus `json:"status"`
	Seats       int                `json:"seats"`
	RACPosition int                `json:"rac_position"`
	Waitlist    int                `json:"waitlist"`
}

type TrainSearchResult struct {
	Number        string                   `json:"number"`
	Name          string                   `json:"name"`
	From          entity.Station           `json:"from"`
	To            entity.Station           `json:"to"`
	DepartureTime string                   `json:"departure_time"`
	ArrivalTime   string                   `json:"arrival_time"`
	Duration      string                   `json:"duration"`
	DistanceKM    int                      `json:"distance_km"`
	RunningDays   entity.RunningDays       `json:"running_days"`
	TrainStatus   entity.TrainStatus       `json:"train_status"`
	JourneyDate   entity.CivilDate         `json:"journey_date"`
	Classes       map[string]ClassOffering `json:"classes"`
}

type PassengerRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=255"`
	Age             int    `json:"age" binding:"required,min=1,max=120"`
	Gender          string `json:"gender" binding:"required"`
	BerthPreference string `json:"berth_preference"`
	Concession      string `json:"concession"`
}

type ContactRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type PaymentRequest struct {
	Method    string `json:"method"`
	Reference string `json:"reference"`
}

type CreateBookingRequest struct {
	TrainNumber string             `json:"train_number" binding:"required"`
	JourneyDate string             `json:"journey_date" binding:"required"`
	From        string             `json:"from" binding:"required"`
	To          string             `json:"to" binding:"required"`
	TravelClass string             `json:"travel_class" binding:"required"`
	Quota       string             `json:"quota"`
	Passengers  []PassengerRequest `json:"passengers" binding:"required,min=1,dive"`
	Contact     ContactRequest     `json:"contact" binding:"required"`
	Payment     *PaymentRequest    `json:"payment"`
	TotalFare   decimal.Decimal    `json:"total_fare" binding:"required"`
}

type CreateBookingResponse struct {
	PNR string `json:"pnr"`
}

type TrainSummary struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

type PassengerStatus struct {
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	BerthPreference string `json:"berth_preference,omitempty"`
	Concession      string `json:"concession"`
	BookingStatus   string `json:"booking_status"`
	CurrentStatus   string `json:"current_status"`
}

type PNRStatusResponse struct {
	PNR         string               `json:"pnr"`
	Train       TrainSummary         `json:"train"`
	JourneyDate entity.CivilDate     `json:"journey_date"`
	From        entity.Station       `json:"from"`
	To          entity.Station       `json:"to"`
	TravelClass string               `json:"travel_class"`
	Quota       string               `json:"quota"`
	TotalFare   decimal.Decimal      `json:"total_fare"`
	Status      entity.BookingStatus `json:"status"`
	ChartStatus string               `json:"chart_status"`
	Passengers  []PassengerStatus    `json:"passengers"`
	BookedAt    time.Time            `json:"booked_at"`
}

type CancelBookingResponse struct {
	PNR          string          `json:"pnr"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}
