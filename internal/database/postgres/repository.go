package repository

import (
	"context"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

type StationRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Station, error)
	GetByID(ctx context.Context, id int64) (*entity.Station, error)
	List(ctx context.Context, limit int) ([]*entity.Station, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Station, error)
}

type TrainRepository interface {
	GetByNumber(ctx context.Context, number string) (*entity.TrainWithRoute, error)
	GetByID(ctx context.Context, id int64) (*entity.TrainWithRoute, error)
	FindByRoute(ctx context.Context, fromStationID, toStationID int64) ([]*entity.TrainWithRoute, error)
	ClassesFor(ctx context.Context, trainID int64) ([]entity.TrainClass, error)
}

type BookingRepository interface {
	// Create inserts the booking row and all passenger rows in one
	// transaction. A PNR collision surfaces as entity.ErrDuplicatePNR so the
	// allocator can retry with a fresh number.
	Create(ctx context.Context, booking *entity.Booking) error

	// GetByPNR returns the booking with its passengers in insertion order.
	GetByPNR(ctx context.Context, pnr string) (*entity.Booking, error)

	// Cancel flips CONFIRMED -> CANCELLED under a row lock and returns the
	// booking as it was before the flip. A missing PNR and a contact-email
	// mismatch are both entity.ErrPNRNotFound; a booking that is already
	// cancelled is entity.ErrAlreadyCancelled.
	Cancel(ctx context.Context, pnr, email string) (*entity.Booking, error)
}
