package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) GetByCode(ctx context.Context, code string) (*entity.Station, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Station), args.Error(1)
}

func (m *MockStationRepository) GetByID(ctx context.Context, id int64) (*entity.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Station), args.Error(1)
}

func (m *MockStationRepository) List(ctx context.Context, limit int) ([]*entity.Station, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Station), args.Error(1)
}

func (m *MockStationRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Station, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Station), args.Error(1)
}

type MockTrainRepository struct {
	mock.Mock
}

func (m *MockTrainRepository) GetByNumber(ctx context.Context, number string) (*entity.TrainWithRoute, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TrainWithRoute), args.Error(1)
}

func (m *MockTrainRepository) GetByID(ctx context.Context, id int64) (*entity.TrainWithRoute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TrainWithRoute), args.Error(1)
}

func (m *MockTrainRepository) FindByRoute(ctx context.Context, fromStationID, toStationID int64) ([]*entity.TrainWithRoute, error) {
	args := m.Called(ctx, fromStationID, toStationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TrainWithRoute), args.Error(1)
}

func (m *MockTrainRepository) ClassesFor(ctx context.Context, trainID int64) ([]entity.TrainClass, error) {
	args := m.Called(ctx, trainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TrainClass), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, pnr, email string) (*entity.Booking, error) {
	args := m.Called(ctx, pnr, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}
