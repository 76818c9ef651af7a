// Package views derives presentation-ready values from raw API data.
// Everything here is pure: no I/O, no clock reads, no mutation of the
// inputs. Callers pass "now" explicitly so output is reproducible.
package views

import (
	"time"

	"github.com/dayflowhq/dayflow/internal/api"
)

// DayStatus classifies one day in the weekly attendance grid.
type DayStatus string

// Grid day statuses. Present and Absent come from records; Weekend is
// derived for configured weekend days with no record.
const (
	StatusPresent DayStatus = "Present"
	StatusAbsent  DayStatus = "Absent"
	StatusWeekend DayStatus = "Weekend"
)

// GridDay is one row of the weekly attendance grid.
type GridDay struct {
	Date       time.Time
	Weekday    time.Weekday
	Status     DayStatus
	CheckIn    string
	CheckOut   string
	TotalHours float64
	Today      bool
}

// DefaultWeekendDays is the weekend used when none is configured.
var DefaultWeekendDays = []time.Weekday{time.Saturday, time.Sunday}

const dateLayout = "2006-01-02"

// WeekStart returns the Sunday on or before t, at midnight in t's
// location.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeeklyGrid builds the seven-day Sunday-to-Saturday grid for the week
// containing today. Days without a record are Absent, except configured
// weekend days which render as Weekend. A record with no status counts
// as Present when it has a check-in and Absent otherwise.
func WeeklyGrid(records []api.AttendanceDay, today time.Time, weekendDays []time.Weekday) []GridDay {
	if weekendDays == nil {
		weekendDays = DefaultWeekendDays
	}
	weekend := make(map[time.Weekday]bool, len(weekendDays))
	for _, d := range weekendDays {
		weekend[d] = true
	}

	byDate := make(map[string]api.AttendanceDay, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	start := WeekStart(today)
	todayKey := today.Format(dateLayout)

	grid := make([]GridDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		key := date.Format(dateLayout)
		day := GridDay{
			Date:    date,
			Weekday: date.Weekday(),
			Today:   key == todayKey,
		}

		if r, ok := byDate[key]; ok {
			day.CheckIn = r.CheckIn
			day.CheckOut = r.CheckOut
			day.TotalHours = r.TotalHours
			day.Status = recordStatus(r)
		} else if weekend[date.Weekday()] {
			day.Status = StatusWeekend
		} else {
			day.Status = StatusAbsent
		}

		grid = append(grid, day)
	}
	return grid
}

// recordStatus resolves a record's display status. The backend usually
// sets one; older records may carry only punch times.
func recordStatus(r api.AttendanceDay) DayStatus {
	if r.Status != "" {
		return DayStatus(r.Status)
	}
	if r.CheckIn != "" {
		return StatusPresent
	}
	return StatusAbsent
}
