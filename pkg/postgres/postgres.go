package postgres

import (
	"database/sql"
	"fmt"

	"github.com/VishalKR1202/ChukGO1/config"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS stations (
			id SERIAL PRIMARY KEY,
			code VARCHAR(10) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(100) NOT NULL,
			state VARCHAR(100) NOT NULL,
			zone VARCHAR(10) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS trains (
			id SERIAL PRIMARY KEY,
			number VARCHAR(10) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL,
			from_station_id INTEGER NOT NULL REFERENCES stations(id),
			to_station_id INTEGER NOT NULL REFERENCES stations(id),
			departure_time VARCHAR(5) NOT NULL,
			arrival_time VARCHAR(5) NOT NULL,
			duration VARCHAR(20) NOT NULL,
			distance_km INTEGER NOT NULL,
			running_days TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'ON_TIME'
		)`,

		`CREATE TABLE IF NOT EXISTS train_classes (
			id SERIAL PRIMARY KEY,
			train_id INTEGER NOT NULL REFERENCES trains(id),
			class_code VARCHAR(4) NOT NULL,
			base_fare NUMERIC(10,2) NOT NULL CHECK (base_fare > 0),
			total_seats INTEGER NOT NULL CHECK (total_seats > 0),
			UNIQUE (train_id, class_code)
		)`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			pnr CHAR(10) UNIQUE NOT NULL,
			train_id INTEGER NOT NULL REFERENCES trains(id),
			journey_date DATE NOT NULL,
			from_station_id INTEGER NOT NULL REFERENCES stations(id),
			to_station_id INTEGER NOT NULL REFERENCES stations(id),
			travel_class VARCHAR(4) NOT NULL,
			quota VARCHAR(10) NOT NULL DEFAULT 'GN',
			total_fare NUMERIC(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'CONFIRMED',
			contact_email VARCHAR(255) NOT NULL,
			contact_phone VARCHAR(20) NOT NULL,
			payment_method VARCHAR(50),
			payment_ref VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS passengers (
			id SERIAL PRIMARY KEY,
			booking_id INTEGER NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			name VARCHAR(255) NOT NULL,
			age INTEGER NOT NULL CHECK (age > 0),
			gender VARCHAR(10) NOT NULL,
			berth_preference VARCHAR(20),
			concession VARCHAR(20) NOT NULL DEFAULT 'NONE',
			booking_status VARCHAR(20) NOT NULL,
			current_status VARCHAR(20) NOT NULL,
			UNIQUE (booking_id, seq)
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_trains_route ON trains(from_station_id, to_station_id)`,
		`CREATE INDEX IF NOT EXISTS idx_train_classes_train_id ON train_classes(train_id)`,
		`CREATE INDEX IF NOT EXISTS idx_passengers_booking_id ON passengers(booking_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}
