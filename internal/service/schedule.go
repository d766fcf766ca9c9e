package service

import (
	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

// RunsOn reports whether a train with the given running-day set operates on
// the given calendar date. Dates are civil: the weekday comes straight off
// the Gregorian calendar with no timezone conversion. Date validation (past
// dates, malformed input) is the caller's job.
func RunsOn(days entity.RunningDays, date entity.CivilDate) bool {
	return days.Contains(date.Weekday())
}
