package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

type trainRepository struct {
	db *sql.DB
}

func NewTrainRepository(db *sql.DB) TrainRepository {
	return &trainRepository{db: db}
}

const trainRouteQuery = `
	SELECT
		t.id, t.number, t.name, t.from_station_id, t.to_station_id,
		t.departure_time, t.arrival_time, t.duration, t.distance_km,
		t.running_days, t.status,
		o.id, o.code, o.name, o.city, o.state, o.zone,
		d.id, d.code, d.name, d.city, d.state, d.zone
	FROM trains t
	JOIN stations o ON t.from_station_id = o.id
	JOIN stations d ON t.to_station_id = d.id
`

func (r *trainRepository) GetByNumber(ctx context.Context, number string) (*entity.TrainWithRoute, error) {
	row := r.db.QueryRowContext(ctx, trainRouteQuery+` WHERE t.number = $1`, number)
	return r.scanTrainWithClasses(ctx, row)
}

func (r *trainRepository) GetByID(ctx context.Context, id int64) (*entity.TrainWithRoute, error) {
	row := r.db.QueryRowContext(ctx, trainRouteQuery+` WHERE t.id = $1`, id)
	return r.scanTrainWithClasses(ctx, row)
}

func (r *trainRepository) scanTrainWithClasses(ctx context.Context, row *sql.Row) (*entity.TrainWithRoute, error) {
	var train entity.TrainWithRoute
	err := row.Scan(
		&train.ID, &train.Number, &train.Name, &train.FromStationID, &train.ToStationID,
		&train.DepartureTime, &train.ArrivalTime, &train.Duration, &train.DistanceKM,
		&train.RunningDays, &train.Status,
		&train.From.ID, &train.From.Code, &train.From.Name, &train.From.City, &train.From.State, &train.From.Zone,
		&train.To.ID, &train.To.Code, &train.To.Name, &train.To.City, &train.To.State, &train.To.Zone,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrTrainNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get train: %v", entity.ErrStoreUnavailable, err)
	}

	classes, err := r.ClassesFor(ctx, train.ID)
	if err != nil {
		return nil, err
	}
	train.Classes = classes

	return &train, nil
}

func (r *trainRepository) FindByRoute(ctx context.Context, fromStationID, toStationID int64) ([]*entity.TrainWithRoute, error) {
	query := trainRouteQuery + `
		WHERE t.from_station_id = $1 AND t.to_station_id = $2
		ORDER BY t.departure_time
	`

	rows, err := r.db.QueryContext(ctx, query, fromStationID, toStationID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query trains by route: %v", entity.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var trains []*entity.TrainWithRoute
	for rows.Next() {
		var train entity.TrainWithRoute
		err := rows.Scan(
			&train.ID, &train.Number, &train.Name, &train.FromStationID, &train.ToStationID,
			&train.DepartureTime, &train.ArrivalTime, &train.Duration, &train.DistanceKM,
			&train.RunningDays, &train.Status,
			&train.From.ID, &train.From.Code, &train.From.Name, &train.From.City, &train.From.State, &train.From.Zone,
			&train.To.ID, &train.To.Code, &train.To.Name, &train.To.City, &train.To.State, &train.To.Zone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan train: %v", err)
		}
		trains = append(trains, &train)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: train rows: %v", entity.ErrStoreUnavailable, err)
	}

	for _, train := range trains {
		classes, err := r.ClassesFor(ctx, train.ID)
		if err != nil {
			return nil, err
		}
		train.Classes = classes
	}

	return trains, nil
}

// ClassesFor is a pure lookup over the per-train class catalog.
func (r *trainRepository) ClassesFor(ctx context.Context, trainID int64) ([]entity.TrainClass, error) {
	query := `
		SELECT id, train_id, class_code, base_fare, total_seats
		FROM train_classes
		WHERE train_id = $1
		ORDER BY class_code
	`

	rows, err := r.db.QueryContext(ctx, query, trainID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query train classes: %v", entity.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var classes []entity.TrainClass
	for rows.Next() {
		var class entity.TrainClass
		err := rows.Scan(&class.ID, &class.TrainID, &class.Code, &class.BaseFare, &class.TotalSeats)
		if err != nil {
			return nil, fmt.Errorf("failed to scan train class: %v", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: train class rows: %v", entity.ErrStoreUnavailable, err)
	}

	return classes, nil
}
