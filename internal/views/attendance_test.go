package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflowhq/dayflow/internal/api"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"midweek", "2024-01-10", "2024-01-07"}, // Wednesday
		{"sunday is its own start", "2024-01-07", "2024-01-07"},
		{"saturday", "2024-01-13", "2024-01-07"},
		{"across month boundary", "2024-02-01", "2024-01-28"}, // Thursday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := time.Parse("2006-01-02", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, WeekStart(in).Format("2006-01-02"))
		})
	}
}

func TestWeeklyGridShape(t *testing.T) {
	today := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC) // Wednesday

	grid := WeeklyGrid(nil, today, nil)

	require.Len(t, grid, 7)
	assert.Equal(t, time.Sunday, grid[0].Weekday)
	assert.Equal(t, time.Saturday, grid[6].Weekday)
	assert.Equal(t, "2024-01-07", grid[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-13", grid[6].Date.Format("2006-01-02"))
}

func TestWeeklyGridStatuses(t *testing.T) {
	today := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) // Wednesday
	records := []api.AttendanceDay{
		{Date: "2024-01-08", CheckIn: "09:02", CheckOut: "17:31", Status: "Present", TotalHours: 8.5},
		{Date: "2024-01-09", CheckIn: "09:15"}, // no status, has punch
		{Date: "2024-01-10", Status: "Absent"},
	}

	grid := WeeklyGrid(records, today, nil)

	// Sunday and Saturday have no records and fall on the weekend.
	assert.Equal(t, StatusWeekend, grid[0].Status)
	assert.Equal(t, StatusWeekend, grid[6].Status)

	// Monday carries the record through.
	assert.Equal(t, StatusPresent, grid[1].Status)
	assert.Equal(t, "09:02", grid[1].CheckIn)
	assert.Equal(t, "17:31", grid[1].CheckOut)
	assert.InDelta(t, 8.5, grid[1].TotalHours, 0.001)

	// Tuesday has a punch but no status.
	assert.Equal(t, StatusPresent, grid[2].Status)

	// Wednesday's record says absent even though it is today.
	assert.Equal(t, StatusAbsent, grid[3].Status)

	// Thursday and Friday are plain working days with no record.
	assert.Equal(t, StatusAbsent, grid[4].Status)
	assert.Equal(t, StatusAbsent, grid[5].Status)
}

func TestWeeklyGridRecordWithoutPunchIsAbsent(t *testing.T) {
	today := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	records := []api.AttendanceDay{{Date: "2024-01-09"}}

	grid := WeeklyGrid(records, today, nil)

	assert.Equal(t, StatusAbsent, grid[2].Status)
}

func TestWeeklyGridTodayFlag(t *testing.T) {
	today := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)

	grid := WeeklyGrid(nil, today, nil)

	for i, day := range grid {
		assert.Equal(t, i == 3, day.Today, day.Date.Format("2006-01-02"))
	}
}

func TestWeeklyGridConfigurableWeekend(t *testing.T) {
	today := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	grid := WeeklyGrid(nil, today, []time.Weekday{time.Friday})

	assert.Equal(t, StatusAbsent, grid[0].Status)  // Sunday works
	assert.Equal(t, StatusWeekend, grid[5].Status) // Friday off
	assert.Equal(t, StatusAbsent, grid[6].Status)  // Saturday works
}

func TestWeeklyGridRecordOverridesWeekend(t *testing.T) {
	today := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	records := []api.AttendanceDay{
		{Date: "2024-01-13", CheckIn: "10:00", Status: "Present"},
	}

	grid := WeeklyGrid(records, today, nil)

	assert.Equal(t, StatusPresent, grid[6].Status)
}
