package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

var fixedNow = func() time.Time {
	return time.Date(2026, time.March, 10, 15, 4, 5, 0, time.UTC)
}

func testRajdhani() *entity.TrainWithRoute {
	return &entity.TrainWithRoute{
		Train: entity.Train{
			ID:          1,
			Number:      "12301",
			Name:        "Rajdhani Express",
			RunningDays: entity.AllDays(),
			Status:      entity.TrainStatusOnTime,
		},
		From: entity.Station{ID: 1, Code: "NDLS", Name: "New Delhi"},
		To:   entity.Station{ID: 2, Code: "CSTM", Name: "Mumbai CST"},
		Classes: []entity.TrainClass{
			{ID: 1, TrainID: 1, Code: "3A", BaseFare: decimal.RequireFromString("1245.00"), TotalSeats: 64},
			{ID: 2, TrainID: 1, Code: "SL", BaseFare: decimal.RequireFromString("685.00"), TotalSeats: 72},
		},
	}
}

func testBookingService(bookingRepo *MockBookingRepository, trainRepo *MockTrainRepository, stationRepo *MockStationRepository) *bookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		trainRepo:   trainRepo,
		stationRepo: stationRepo,
		intn:        func(n int) int { return 2 % n },
		now:         fixedNow,
	}
}

func validCreateRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		TrainNumber: "12301",
		JourneyDate: "2026-03-15",
		From:        "NDLS",
		To:          "CSTM",
		TravelClass: "3A",
		Passengers: []PassengerRequest{
			{Name: "Asha Verma", Age: 34, Gender: "F"},
			{Name: "Rohan Verma", Age: 36, Gender: "M", BerthPreference: "LOWER"},
			{Name: "Kiran Verma", Age: 8, Gender: "F", Concession: "CHILD"},
		},
		Contact:   ContactRequest{Email: "asha@example.com", Phone: "9876543210"},
		TotalFare: decimal.RequireFromString("3735.00"),
	}
}

func TestCreateBooking_Success(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	trainRepo := new(MockTrainRepository)
	stationRepo := new(MockStationRepository)
	svc := testBookingService(bookingRepo, trainRepo, stationRepo)

	trainRepo.On("GetByNumber", mock.Anything, "12301").Return(testRajdhani(), nil)
	stationRepo.On("GetByCode", mock.Anything, "NDLS").Return(&entity.Station{ID: 1, Code: "NDLS"}, nil)
	stationRepo.On("GetByCode", mock.Anything, "CSTM").Return(&entity.Station{ID: 2, Code: "CSTM"}, nil)

	var created *entity.Booking
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Booking)
		}).
		Return(nil)

	resp, err := svc.CreateBooking(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.True(t, IsValidPNR(resp.PNR))

	require.NotNil(t, created)
	assert.Equal(t, resp.PNR, created.PNR)
	assert.Equal(t, int64(1), created.TrainID)
	assert.Equal(t, int64(1), created.FromStationID)
	assert.Equal(t, int64(2), created.ToStationID)
	assert.Equal(t, "GN", created.Quota)
	assert.Equal(t, entity.BookingStatusConfirmed, created.Status)
	assert.Equal(t, "2026-03-15", created.JourneyDate.String())

	require.Len(t, created.Passengers, 3)
	cnf := regexp.MustCompile(`^CNF/B[1-5]/3[01]$`)
	assert.Regexp(t, cnf, created.Passengers[0].BookingStatus)
	assert.Regexp(t, cnf, created.Passengers[1].BookingStatus)
	assert.Equal(t, "RAC 1", created.Passengers[2].BookingStatus)
	for i, p := range created.Passengers {
		assert.Equal(t, i, p.Seq)
		assert.Equal(t, p.BookingStatus, p.CurrentStatus)
	}
	assert.Equal(t, "NONE", created.Passengers[0].Concession)
	assert.Equal(t, "CHILD", created.Passengers[2].Concession)

	bookingRepo.AssertExpectations(t)
	trainRepo.AssertExpectations(t)
	stationRepo.AssertExpectations(t)
}

func TestCreateBooking_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *CreateBookingRequest)
		wantErr error
	}{
		{
			"no passengers",
			func(req *CreateBookingRequest) { req.Passengers = nil },
			entity.ErrInvalidInput,
		},
		{
			"too many passengers",
			func(req *CreateBookingRequest) {
				req.Passengers = make([]PassengerRequest, 7)
				for i := range req.Passengers {
					req.Passengers[i] = PassengerRequest{Name: "P", Age: 30, Gender: "M"}
				}
			},
			entity.ErrTooManyPassengers,
		},
		{
			"malformed date",
			func(req *CreateBookingRequest) { req.JourneyDate = "15-03-2026" },
			entity.ErrInvalidInput,
		},
		{
			"past date",
			func(req *CreateBookingRequest) { req.JourneyDate = "2026-03-09" },
			entity.ErrPastDate,
		},
		{
			"zero fare",
			func(req *CreateBookingRequest) { req.TotalFare = decimal.Zero },
			entity.ErrInvalidInput,
		},
		{
			"negative fare",
			func(req *CreateBookingRequest) { req.TotalFare = decimal.NewFromInt(-100) },
			entity.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testBookingService(new(MockBookingRepository), new(MockTrainRepository), new(MockStationRepository))

			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.CreateBooking(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBooking_TodayIsBookable(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	trainRepo := new(MockTrainRepository)
	stationRepo := new(MockStationRepository)
	svc := testBookingService(bookingRepo, trainRepo, stationRepo)

	trainRepo.On("GetByNumber", mock.Anything, "12301").Return(testRajdhani(), nil)
	stationRepo.On("GetByCode", mock.Anything, mock.Anything).Return(&entity.Station{ID: 1}, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validCreateRequest()
	req.JourneyDate = "2026-03-10"

	_, err := svc.CreateBooking(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBooking_TrainNotFound(t *testing.T) {
	trainRepo := new(MockTrainRepository)
	svc := testBookingService(new(MockBookingRepository), trainRepo, new(MockStationRepository))

	trainRepo.On("GetByNumber", mock.Anything, "12301").Return(nil, entity.ErrTrainNotFound)

	_, err := svc.CreateBooking(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, entity.ErrTrainNotFound)
}

func TestCreateBooking_ClassNotOffered(t *testing.T) {
	trainRepo := new(MockTrainRepository)
	svc := testBookingService(new(MockBookingRepository), trainRepo, new(MockStationRepository))

	trainRepo.On("GetByNumber", mock.Anything, "12301").Return(testRajdhani(), nil)

	req := validCreateRequest()
	req.TravelClass = "1A" // valid code, not carried by this train

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrClassNotAvailable)
}

func TestCreateBooking_UnknownClassCode(t *testing.T) {
	trainRepo := new(MockTrainRepository)
	svc := testBookingService(new(MockBookingRepository), trainRepo, new(MockStationRepository))

	trainRepo.On("GetByNumber", mock.Anything, "12301").Return(testRajdhani(), nil)

	req := validCreateRequest()
	req.TravelClass = "XX"

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrClassNotAvailable)
}

func TestCreateBooking_TrainNotRunningThatDay(t *testing.T) {
	trainRepo := new(MockTrainRepository)
	svc := testBookingService(new(MockBookingRepository), trainRepo, new(MockStationRepository))

	train := testRajdhani()
	train.RunningDays = entity.RunningDays{"Mon", "Wed", "Fri"}
	trainRepo.On("GetByNumber", mock.Anything, "12301").Return(train, nil)

	req := validCreateRequest()
	req.JourneyDate = "2026-03-15" // a Sunday

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestCreateBooking_RetriesOnPNRCollision(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	trainRepo := new(MockTrainRepository)
	stationRepo := new(MockStationRepository)
	svc := testBookingService(bookingRepo, trainRepo, stationRepo)

	trainRepo.On("GetByNumber", mock.Anything, "12301").Return(testRajdhani(), nil)
	stationRepo.On("GetByCode", mock.Anything, mock.Anything).Return(&entity.Station{ID: 1}, nil)

	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrDuplicatePNR).Once()
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	resp, err := svc.CreateBooking(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.True(t, IsValidPNR(resp.PNR))
	bookingRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreateBooking_GivesUpAfterRepeatedCollisions(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	trainRepo := new(MockTrainRepository)
	stationRepo := new(MockStationRepository)
	svc := testBookingService(bookingRepo, trainRepo, stationRepo)

	trainRepo.On("GetByNumber", mock.Anything, "12301").Return(testRajdhani(), nil)
	stationRepo.On("GetByCode", mock.Anything, mock.Anything).Return(&entity.Station{ID: 1}, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrDuplicatePNR)

	_, err := svc.CreateBooking(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
	bookingRepo.AssertNumberOfCalls(t, "Create", maxPNRAttempts)
}

func TestAllocateStatuses(t *testing.T) {
	svc := &bookingService{intn: func(n int) int { return 4 % n }}

	statuses := svc.allocateStatuses(6)

	assert.Equal(t, []string{
		"CNF/B5/30",
		"CNF/B5/31",
		"RAC 1",
		"RAC 2",
		"RAC 3",
		"RAC 4",
	}, statuses)
}

func TestGetPNRStatus_InvalidPNR(t *testing.T) {
	svc := testBookingService(new(MockBookingRepository), new(MockTrainRepository), new(MockStationRepository))

	for _, pnr := range []string{"", "abc", "123", "12345678901", "12345abcde"} {
		_, err := svc.GetPNRStatus(context.Background(), pnr)
		assert.ErrorIs(t, err, entity.ErrInvalidPNR, "pnr %q", pnr)
	}
}

func TestGetPNRStatus_NotFound(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	svc := testBookingService(bookingRepo, new(MockTrainRepository), new(MockStationRepository))

	bookingRepo.On("GetByPNR", mock.Anything, "4835712906").Return(nil, entity.ErrPNRNotFound)

	_, err := svc.GetPNRStatus(context.Background(), "4835712906")
	assert.ErrorIs(t, err, entity.ErrPNRNotFound)
}

func TestGetPNRStatus_Success(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	trainRepo := new(MockTrainRepository)
	stationRepo := new(MockStationRepository)
	svc := testBookingService(bookingRepo, trainRepo, stationRepo)

	booking := &entity.Booking{
		ID:            7,
		PNR:           "4835712906",
		TrainID:       1,
		JourneyDate:   entity.NewCivilDate(2026, time.March, 15),
		FromStationID: 1,
		ToStationID:   2,
		TravelClass:   "3A",
		Quota:         "GN",
		TotalFare:     decimal.RequireFromString("2490.00"),
		Status:        entity.BookingStatusConfirmed,
		ContactEmail:  "asha@example.com",
		CreatedAt:     fixedNow(),
		Passengers: []entity.Passenger{
			{Seq: 0, Name: "Asha Verma", Age: 34, Gender: "F", Concession: "NONE", BookingStatus: "CNF/B3/30", CurrentStatus: "CNF/B3/30"},
			{Seq: 1, Name: "Rohan Verma", Age: 36, Gender: "M", Concession: "NONE", BookingStatus: "CNF/B3/31", CurrentStatus: "CNF/B3/31"},
		},
	}

	bookingRepo.On("GetByPNR", mock.Anything, "4835712906").Return(booking, nil)
	trainRepo.On("GetByID", mock.Anything, int64(1)).Return(testRajdhani(), nil)
	stationRepo.On("GetByID", mock.Anything, int64(1)).Return(&entity.Station{ID: 1, Code: "NDLS", Name: "New Delhi"}, nil)
	stationRepo.On("GetByID", mock.Anything, int64(2)).Return(&entity.Station{ID: 2, Code: "CSTM", Name: "Mumbai CST"}, nil)

	resp, err := svc.GetPNRStatus(context.Background(), "4835712906")

	require.NoError(t, err)
	assert.Equal(t, "4835712906", resp.PNR)
	assert.Equal(t, TrainSummary{Number: "12301", Name: "Rajdhani Express"}, resp.Train)
	assert.Equal(t, "NDLS", resp.From.Code)
	assert.Equal(t, "CSTM", resp.To.Code)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, "Chart Not Prepared", resp.ChartStatus)
	require.Len(t, resp.Passengers, 2)
	assert.Equal(t, "CNF/B3/30", resp.Passengers[0].BookingStatus)
}

func TestCancelBooking_InvalidPNR(t *testing.T) {
	svc := testBookingService(new(MockBookingRepository), new(MockTrainRepository), new(MockStationRepository))

	_, err := svc.CancelBooking(context.Background(), "not-a-pnr", "asha@example.com")
	assert.ErrorIs(t, err, entity.ErrInvalidPNR)
}

func TestCancelBooking_Success(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	svc := testBookingService(bookingRepo, new(MockTrainRepository), new(MockStationRepository))

	booking := &entity.Booking{
		PNR:         "4835712906",
		JourneyDate: entity.NewCivilDate(2026, time.March, 20),
		TotalFare:   decimal.RequireFromString("1000.00"),
		Status:      entity.BookingStatusConfirmed,
	}
	bookingRepo.On("Cancel", mock.Anything, "4835712906", "asha@example.com").Return(booking, nil)

	resp, err := svc.CancelBooking(context.Background(), "4835712906", "asha@example.com")

	require.NoError(t, err)
	assert.Equal(t, "4835712906", resp.PNR)
	assert.True(t, resp.RefundAmount.Equal(decimal.RequireFromString("900")),
		"refund = %s", resp.RefundAmount)
}

func TestCancelBooking_JourneyDayRefundsNothing(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	svc := testBookingService(bookingRepo, new(MockTrainRepository), new(MockStationRepository))

	booking := &entity.Booking{
		PNR:         "4835712906",
		JourneyDate: entity.NewCivilDate(2026, time.March, 10),
		TotalFare:   decimal.RequireFromString("1000.00"),
	}
	bookingRepo.On("Cancel", mock.Anything, "4835712906", "asha@example.com").Return(booking, nil)

	resp, err := svc.CancelBooking(context.Background(), "4835712906", "asha@example.com")

	require.NoError(t, err)
	assert.True(t, resp.RefundAmount.IsZero())
}

func TestCancelBooking_WrongEmailLooksLikeMissingPNR(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	svc := testBookingService(bookingRepo, new(MockTrainRepository), new(MockStationRepository))

	bookingRepo.On("Cancel", mock.Anything, "4835712906", "other@example.com").
		Return(nil, entity.ErrPNRNotFound)

	_, err := svc.CancelBooking(context.Background(), "4835712906", "other@example.com")
	assert.ErrorIs(t, err, entity.ErrPNRNotFound)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	svc := testBookingService(bookingRepo, new(MockTrainRepository), new(MockStationRepository))

	bookingRepo.On("Cancel", mock.Anything, "4835712906", "asha@example.com").
		Return(nil, entity.ErrAlreadyCancelled)

	_, err := svc.CancelBooking(context.Background(), "4835712906", "asha@example.com")
	assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)
}
