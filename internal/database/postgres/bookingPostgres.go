package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts the booking row and all passenger rows in a single
// transaction, so a booking is visible to readers only with its full
// passenger list. The unique index on bookings.pnr is the authority on PNR
// uniqueness; a collision rolls everything back and reports ErrDuplicatePNR.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", entity.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings (
			pnr, train_id, journey_date, from_station_id, to_station_id,
			travel_class, quota, total_fare, status, contact_email,
			contact_phone, payment_method, payment_ref, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	now := time.Now()
	err = tx.QueryRowContext(ctx, query,
		booking.PNR,
		booking.TrainID,
		booking.JourneyDate,
		booking.FromStationID,
		booking.ToStationID,
		booking.TravelClass,
		booking.Quota,
		booking.TotalFare,
		booking.Status,
		booking.ContactEmail,
		booking.ContactPhone,
		nullString(booking.PaymentMethod),
		nullString(booking.PaymentRef),
		now,
	).Scan(&booking.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrDuplicatePNR
		}
		return fmt.Errorf("%w: failed to create booking: %v", entity.ErrStoreUnavailable, err)
	}
	booking.CreatedAt = now

	passengerQuery := `
		INSERT INTO passengers (
			booking_id, seq, name, age, gender, berth_preference,
			concession, booking_status, current_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	for i := range booking.Passengers {
		p := &booking.Passengers[i]
		p.BookingID = booking.ID

		err = tx.QueryRowContext(ctx, passengerQuery,
			p.BookingID,
			p.Seq,
			p.Name,
			p.Age,
			p.Gender,
			nullString(p.BerthPreference),
			p.Concession,
			p.BookingStatus,
			p.CurrentStatus,
		).Scan(&p.ID)

		if err != nil {
			return fmt.Errorf("%w: failed to add passenger: %v", entity.ErrStoreUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit booking: %v", entity.ErrStoreUnavailable, err)
	}

	return nil
}

const bookingColumns = `
	id, pnr, train_id, journey_date, from_station_id, to_station_id,
	travel_class, quota, total_fare, status, contact_email, contact_phone,
	payment_method, payment_ref, created_at
`

func (r *bookingRepository) GetByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE pnr = $1`

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, pnr))
	if err != nil {
		return nil, err
	}

	passengers, err := r.loadPassengers(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Passengers = passengers

	return booking, nil
}

// Cancel performs the single allowed status transition under a row lock.
// Two concurrent cancels serialize on the lock: the first one commits the
// flip, the second observes CANCELLED and fails. An unknown PNR and an email
// mismatch are deliberately indistinguishable.
func (r *bookingRepository) Cancel(ctx context.Context, pnr, email string) (*entity.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", entity.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE pnr = $1 FOR UPDATE`

	booking, err := scanBooking(tx.QueryRowContext(ctx, query, pnr))
	if err != nil {
		return nil, err
	}

	if booking.ContactEmail != email {
		return nil, entity.ErrPNRNotFound
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, entity.ErrAlreadyCancelled
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2`,
		entity.BookingStatusCancelled, booking.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", entity.ErrStoreUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit cancellation: %v", entity.ErrStoreUnavailable, err)
	}

	return booking, nil
}

func (r *bookingRepository) loadPassengers(ctx context.Context, bookingID int64) ([]entity.Passenger, error) {
	query := `
		SELECT id, booking_id, seq, name, age, gender, berth_preference,
			concession, booking_status, current_status
		FROM passengers
		WHERE booking_id = $1
		ORDER BY seq
	`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query passengers: %v", entity.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var passengers []entity.Passenger
	for rows.Next() {
		var p entity.Passenger
		var berthPreference sql.NullString

		err := rows.Scan(
			&p.ID, &p.BookingID, &p.Seq, &p.Name, &p.Age, &p.Gender,
			&berthPreference, &p.Concession, &p.BookingStatus, &p.CurrentStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan passenger: %v", err)
		}

		p.BerthPreference = berthPreference.String
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: passenger rows: %v", entity.ErrStoreUnavailable, err)
	}

	return passengers, nil
}

func scanBooking(row *sql.Row) (*entity.Booking, error) {
	var booking entity.Booking
	var paymentMethod, paymentRef sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.PNR,
		&booking.TrainID,
		&booking.JourneyDate,
		&booking.FromStationID,
		&booking.ToStationID,
		&booking.TravelClass,
		&booking.Quota,
		&booking.TotalFare,
		&booking.Status,
		&booking.ContactEmail,
		&booking.ContactPhone,
		&paymentMethod,
		&paymentRef,
		&booking.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrPNRNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get booking: %v", entity.ErrStoreUnavailable, err)
	}

	booking.PaymentMethod = paymentMethod.String
	booking.PaymentRef = paymentRef.String

	return &booking, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
