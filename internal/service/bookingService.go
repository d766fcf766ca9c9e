package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	repository "github.com/VishalKR1202/ChukGO1/internal/database/postgres"
	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

const (
	// chartNotPrepared is the only chart state in scope; chart preparation
	// and RAC promotion happen outside this service.
	chartNotPrepared = "Chart Not Prepared"

	defaultQuota      = "GN"
	defaultConcession = "NONE"

	// maxPNRAttempts bounds the retry loop against the pnr unique index.
	// With 10^10 possible numbers, hitting this bound means the store is in
	// trouble, not the generator.
	maxPNRAttempts = 5
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	trainRepo   repository.TrainRepository
	stationRepo repository.StationRepository
	intn        func(n int) int
	now         func() time.Time
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	trainRepo repository.TrainRepository,
	stationRepo repository.StationRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		trainRepo:   trainRepo,
		stationRepo: stationRepo,
		intn:        rand.Intn,
		now:         time.Now,
	}
}

// CreateBooking validates the request, allocates per-passenger seat statuses,
// and writes the booking under a freshly generated PNR. The booking row and
// all passenger rows commit in one transaction; on a PNR collision the whole
// write is retried with a new number.
func (s *bookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResponse, error) {
	if len(req.Passengers) == 0 {
		return nil, fmt.Errorf("%w: at least one passenger is required", entity.ErrInvalidInput)
	}
	if len(req.Passengers) > entity.MaxPassengersPerBooking {
		return nil, entity.ErrTooManyPassengers
	}

	journeyDate, err := entity.ParseCivilDate(req.JourneyDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}
	if journeyDate.Before(entity.CivilToday(s.now())) {
		return nil, entity.ErrPastDate
	}

	if !req.TotalFare.IsPositive() {
		return nil, fmt.Errorf("%w: total fare must be positive", entity.ErrInvalidInput)
	}

	train, err := s.trainRepo.GetByNumber(ctx, req.TrainNumber)
	if err != nil {
		return nil, fmt.Errorf("train %s: %w", req.TrainNumber, err)
	}

	if !entity.IsTravelClass(req.TravelClass) || !hasClass(train.Classes, req.TravelClass) {
		return nil, fmt.Errorf("class %s: %w", req.TravelClass, entity.ErrClassNotAvailable)
	}

	if !RunsOn(train.RunningDays, journeyDate) {
		return nil, fmt.Errorf("%w: train %s does not run on %s",
			entity.ErrInvalidInput, req.TrainNumber, journeyDate)
	}

	from, err := s.stationRepo.GetByCode(ctx, req.From)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	to, err := s.stationRepo.GetByCode(ctx, req.To)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	quota := req.Quota
	if quota == "" {
		quota = defaultQuota
	}

	statuses := s.allocateStatuses(len(req.Passengers))
	passengers := make([]entity.Passenger, len(req.Passengers))
	for i, p := range req.Passengers {
		concession := p.Concession
		if concession == "" {
			concession = defaultConcession
		}
		passengers[i] = entity.Passenger{
			Seq:             i,
			Name:            p.Name,
			Age:             p.Age,
			Gender:          p.Gender,
			BerthPreference: p.BerthPreference,
			Concession:      concession,
			BookingStatus:   statuses[i],
			CurrentStatus:   statuses[i],
		}
	}

	booking := &entity.Booking{
		TrainID:       train.ID,
		JourneyDate:   journeyDate,
		FromStationID: from.ID,
		ToStationID:   to.ID,
		TravelClass:   req.TravelClass,
		Quota:         quota,
		TotalFare:     req.TotalFare,
		Status:        entity.BookingStatusConfirmed,
		ContactEmail:  req.Contact.Email,
		ContactPhone:  req.Contact.Phone,
		Passengers:    passengers,
	}
	if req.Payment != nil {
		booking.PaymentMethod = req.Payment.Method
		booking.PaymentRef = req.Payment.Reference
	}

	pnr, err := s.writeWithFreshPNR(ctx, booking)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"pnr":        pnr,
		"train":      train.Number,
		"class":      req.TravelClass,
		"passengers": len(passengers),
	}).Info("Booking created")

	return &CreateBookingResponse{PNR: pnr}, nil
}

// writeWithFreshPNR generates a PNR and commits the booking, retrying with a
// new number if the ledger reports the PNR is already taken.
func (s *bookingService) writeWithFreshPNR(ctx context.Context, booking *entity.Booking) (string, error) {
	for attempt := 0; attempt < maxPNRAttempts; attempt++ {
		pnr, err := GeneratePNR()
		if err != nil {
			return "", err
		}

		booking.PNR = pnr
		err = s.bookingRepo.Create(ctx, booking)
		if err == nil {
			return pnr, nil
		}
		if errors.Is(err, entity.ErrDuplicatePNR) {
			logrus.Warnf("PNR collision on %s, retrying", pnr)
			continue
		}
		return "", fmt.Errorf("failed to create booking: %w", err)
	}

	return "", fmt.Errorf("%w: could not allocate a unique pnr after %d attempts",
		entity.ErrStoreUnavailable, maxPNRAttempts)
}

// allocateStatuses reproduces the fixed small-N allocation rule: the first
// two passengers get a confirmed berth in a random coach B1..B5 at seat
// 30+index, everyone after that goes to RAC ranked by request order.
func (s *bookingService) allocateStatuses(count int) []string {
	statuses := make([]string, count)
	for i := range statuses {
		if i < 2 {
			statuses[i] = fmt.Sprintf("CNF/B%d/%d", s.intn(5)+1, 30+i)
		} else {
			statuses[i] = fmt.Sprintf("RAC %d", i-1)
		}
	}
	return statuses
}

func (s *bookingService) GetPNRStatus(ctx context.Context, pnr string) (*PNRStatusResponse, error) {
	if !IsValidPNR(pnr) {
		return nil, entity.ErrInvalidPNR
	}

	booking, err := s.bookingRepo.GetByPNR(ctx, pnr)
	if err != nil {
		return nil, fmt.Errorf("pnr %s: %w", pnr, err)
	}

	train, err := s.trainRepo.GetByID(ctx, booking.TrainID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve train: %w", err)
	}

	from, err := s.stationRepo.GetByID(ctx, booking.FromStationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve origin: %w", err)
	}
	to, err := s.stationRepo.GetByID(ctx, booking.ToStationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination: %w", err)
	}

	passengers := make([]PassengerStatus, len(booking.Passengers))
	for i, p := range booking.Passengers {
		passengers[i] = PassengerStatus{
			Name:            p.Name,
			Age:             p.Age,
			Gender:          p.Gender,
			BerthPreference: p.BerthPreference,
			Concession:      p.Concession,
			BookingStatus:   p.BookingStatus,
			CurrentStatus:   p.CurrentStatus,
		}
	}

	return &PNRStatusResponse{
		PNR:         booking.PNR,
		Train:       TrainSummary{Number: train.Number, Name: train.Name},
		JourneyDate: booking.JourneyDate,
		From:        *from,
		To:          *to,
		TravelClass: booking.TravelClass,
		Quota:       booking.Quota,
		TotalFare:   booking.TotalFare,
		Status:      booking.Status,
		ChartStatus: chartNotPrepared,
		Passengers:  passengers,
		BookedAt:    booking.CreatedAt,
	}, nil
}

// CancelBooking flips the booking to CANCELLED and returns the refund for
// its fare at today's tier. The ledger guards the transition, so concurrent
// cancels produce exactly one refund.
func (s *bookingService) CancelBooking(ctx context.Context, pnr, email string) (*CancelBookingResponse, error) {
	if !IsValidPNR(pnr) {
		return nil, entity.ErrInvalidPNR
	}

	booking, err := s.bookingRepo.Cancel(ctx, pnr, email)
	if err != nil {
		return nil, fmt.Errorf("pnr %s: %w", pnr, err)
	}

	refund := Refund(booking.TotalFare, booking.JourneyDate, entity.CivilToday(s.now()))

	logrus.WithFields(logrus.Fields{
		"pnr":    pnr,
		"refund": refund.String(),
	}).Info("Booking cancelled")

	return &CancelBookingResponse{PNR: pnr, RefundAmount: refund}, nil
}

func hasClass(classes []entity.TrainClass, code string) bool {
	for _, c := range classes {
		if c.Code == code {
			return true
		}
	}
	return false
}
