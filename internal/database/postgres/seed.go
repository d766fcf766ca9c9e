package repository

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

type seedStation struct {
	code, name, city, state, zone string
}

type seedClass struct {
	code  string
	fare  string
	seats int
}

type seedTrain struct {
	number, name  string
	from, to      string
	dep, arr      string
	duration      string
	distanceKM    int
	runningDays   string
	classes       []seedClass
}

var seedStations = []seedStation{
	{"NDLS", "New Delhi", "Delhi", "Delhi", "NR"},
	{"CSTM", "Mumbai CST", "Mumbai", "Maharashtra", "CR"},
	{"HWH", "Howrah Jn", "Kolkata", "West Bengal", "ER"},
	{"MAS", "Chennai Central", "Chennai", "Tamil Nadu", "SR"},
	{"SBC", "KSR Bengaluru", "Bengaluru", "Karnataka", "SWR"},
	{"SC", "Secunderabad Jn", "Hyderabad", "Telangana", "SCR"},
	{"ADI", "Ahmedabad Jn", "Ahmedabad", "Gujarat", "WR"},
	{"PUNE", "Pune Jn", "Pune", "Maharashtra", "CR"},
	{"JP", "Jaipur Jn", "Jaipur", "Rajasthan", "NWR"},
	{"LKO", "Lucknow", "Lucknow", "Uttar Pradesh", "NR"},
}

var seedTrains = []seedTrain{
	{
		number: "12301", name: "Rajdhani Express",
		from: "NDLS", to: "CSTM",
		dep: "16:50", arr: "10:05", duration: "17h 15m", distanceKM: 1384,
		runningDays: "Sun,Mon,Tue,Wed,Thu,Fri,Sat",
		classes: []seedClass{
			{"1A", "3120.00", 24},
			{"2A", "1890.00", 48},
			{"3A", "1245.00", 64},
			{"SL", "685.00", 72},
		},
	},
	{
		number: "12259", name: "Duronto Express",
		from: "HWH", to: "NDLS",
		dep: "08:20", arr: "23:45", duration: "15h 25m", distanceKM: 1451,
		runningDays: "Mon,Wed,Fri",
		classes: []seedClass{
			{"2A", "1720.00", 48},
			{"3A", "1130.00", 64},
			{"SL", "610.00", 72},
		},
	},
	{
		number: "12951", name: "Mumbai Rajdhani",
		from: "CSTM", to: "NDLS",
		dep: "17:00", arr: "08:15", duration: "15h 15m", distanceKM: 1384,
		runningDays: "Sun,Tue,Thu,Sat",
		classes: []seedClass{
			{"1A", "3250.00", 18},
			{"2A", "1950.00", 48},
			{"3A", "1345.00", 64},
		},
	},
	{
		number: "12909", name: "Garib Rath Express",
		from: "ADI", to: "NDLS",
		dep: "23:45", arr: "14:30", duration: "14h 45m", distanceKM: 934,
		runningDays: "Mon,Thu",
		classes: []seedClass{
			{"3A", "895.00", 78},
		},
	},
	{
		number: "12534", name: "Pushpak Express",
		from: "LKO", to: "CSTM",
		dep: "11:30", arr: "05:15", duration: "17h 45m", distanceKM: 1425,
		runningDays: "Sun,Mon,Tue,Wed,Thu,Fri,Sat",
		classes: []seedClass{
			{"2A", "1580.00", 48},
			{"3A", "980.00", 64},
			{"SL", "545.00", 72},
		},
	},
}

// SeedReferenceData inserts the fixed station and train reference set.
// Inserts are keyed on the unique code/number columns, so re-running on an
// already seeded database is a no-op.
func SeedReferenceData(db *sql.DB) error {
	for _, s := range seedStations {
		_, err := db.Exec(`
			INSERT INTO stations (code, name, city, state, zone)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (code) DO NOTHING
		`, s.code, s.name, s.city, s.state, s.zone)
		if err != nil {
			return fmt.Errorf("failed to seed station %s: %v", s.code, err)
		}
	}

	for _, t := range seedTrains {
		_, err := db.Exec(`
			INSERT INTO trains (number, name, from_station_id, to_station_id,
				departure_time, arrival_time, duration, distance_km, running_days)
			VALUES ($1, $2,
				(SELECT id FROM stations WHERE code = $3),
				(SELECT id FROM stations WHERE code = $4),
				$5, $6, $7, $8, $9)
			ON CONFLICT (number) DO NOTHING
		`, t.number, t.name, t.from, t.to, t.dep, t.arr, t.duration, t.distanceKM, t.runningDays)
		if err != nil {
			return fmt.Errorf("failed to seed train %s: %v", t.number, err)
		}

		for _, c := range t.classes {
			_, err := db.Exec(`
				INSERT INTO train_classes (train_id, class_code, base_fare, total_seats)
				VALUES ((SELECT id FROM trains WHERE number = $1), $2, $3, $4)
				ON CONFLICT (train_id, class_code) DO NOTHING
			`, t.number, c.code, c.fare, c.seats)
			if err != nil {
				return fmt.Errorf("failed to seed class %s/%s: %v", t.number, c.code, err)
			}
		}
	}

	logrus.Info("Reference data seeded")
	return nil
}
