package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

type stationRepository struct {
	db *sql.DB
}

func NewStationRepository(db *sql.DB) StationRepository {
	return &stationRepository{db: db}
}

const stationColumns = `id, code, name, city, state, zone`

func (r *stationRepository) GetByCode(ctx context.Context, code string) (*entity.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE UPPER(code) = UPPER($1)`

	var station entity.Station
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&station.ID,
		&station.Code,
		&station.Name,
		&station.City,
		&station.State,
		&station.Zone,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get station: %v", entity.ErrStoreUnavailable, err)
	}

	return &station, nil
}

func (r *stationRepository) GetByID(ctx context.Context, id int64) (*entity.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE id = $1`

	var station entity.Station
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&station.ID,
		&station.Code,
		&station.Name,
		&station.City,
		&station.State,
		&station.Zone,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get station: %v", entity.ErrStoreUnavailable, err)
	}

	return &station, nil
}

func (r *stationRepository) List(ctx context.Context, limit int) ([]*entity.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations ORDER BY name LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list stations: %v", entity.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanStations(rows)
}

// Search matches the substring case-insensitively against code, name and city.
func (r *stationRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Station, error) {
	q := `
		SELECT ` + stationColumns + `
		FROM stations
		WHERE code ILIKE $1 OR name ILIKE $1 OR city ILIKE $1
		ORDER BY name
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, q, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to search stations: %v", entity.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanStations(rows)
}

func scanStations(rows *sql.Rows) ([]*entity.Station, error) {
	var stations []*entity.Station
	for rows.Next() {
		var station entity.Station
		err := rows.Scan(
			&station.ID,
			&station.Code,
			&station.Name,
			&station.City,
			&station.State,
			&station.Zone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station: %v", err)
		}
		stations = append(stations, &station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: station rows: %v", entity.ErrStoreUnavailable, err)
	}
	return stations, nil
}
