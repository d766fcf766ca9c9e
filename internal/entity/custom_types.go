package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const civilDateLayout = "2006-01-02"

// CivilDate is a timezone-naive calendar date. All journey-date arithmetic in
// the service is done on civil dates; time of day never participates.
type CivilDate struct {
	time.Time
}

func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return CivilDate{t}, nil
}

// CivilToday truncates now to its calendar date.
func CivilToday(now time.Time) CivilDate {
	return NewCivilDate(now.Year(), now.Month(), now.Day())
}

// DaysSince returns the whole number of calendar days from other to d.
func (d CivilDate) DaysSince(other CivilDate) int {
	return int(d.Time.Sub(other.Time).Hours() / 24)
}

func (d CivilDate) Before(other CivilDate) bool {
	return d.Time.Before(other.Time)
}

func (d CivilDate) String() string {
	return d.Format(civilDateLayout)
}

func (d *CivilDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseCivilDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CivilDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(civilDateLayout) + `"`), nil
}

func (d CivilDate) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *CivilDate) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = NewCivilDate(v.Year(), v.Month(), v.Day())
	case []byte:
		parsed, err := ParseCivilDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
	case string:
		parsed, err := ParseCivilDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("cannot scan type %T into CivilDate", value)
	}
	return nil
}

// RunningDays is the subset of weekdays a train operates, as short weekday
// names ("Mon".."Sun"). Stored as one comma-joined text column.
type RunningDays []string

// AllDays covers the full week, Sunday first.
func AllDays() RunningDays {
	return RunningDays{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}

// Contains reports whether the set includes the given weekday.
func (rd RunningDays) Contains(day time.Weekday) bool {
	name := day.String()[:3]
	for _, d := range rd {
		if d == name {
			return true
		}
	}
	return false
}

func (rd RunningDays) Value() (driver.Value, error) {
	return strings.Join(rd, ","), nil
}

func (rd *RunningDays) Scan(value interface{}) error {
	if value == nil {
		*rd = nil
		return nil
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan type %T into RunningDays", value)
	}

	if s == "" {
		*rd = nil
		return nil
	}
	*rd = strings.Split(s, ",")
	return nil
}
