package inventory

import (
	"testing"
	"time"

	"fairway/models"
	"fairway/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// March 15 2026 is the fixed "today" for calendar tests; March 2026 starts on
// a Sunday, April 2026 on a Wednesday.
func calendarClock() utils.FixedClock {
	return utils.FixedClock{Instant: time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)}
}

func TestBuildGridWeekdayOffset(t *testing.T) {
	view := NewCalendarView(calendarClock())
	grid := view.BuildGrid(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local), nil)

	assert.Equal(t, 2026, grid.Year)
	assert.Equal(t, time.April, grid.Month)
	require.NotEmpty(t, grid.Weeks)

	// April 1 2026 falls on a Wednesday: columns 0-2 of the first row are
	// empty, never filled with March days.
	first := grid.Weeks[0]
	assert.Nil(t, first[0])
	assert.Nil(t, first[1])
	assert.Nil(t, first[2])
	require.NotNil(t, first[3])
	assert.Equal(t, 1, first[3].Day)
	assert.Equal(t, "2026-04-01", first[3].Date)
}

func TestBuildGridContainsOnlyOwnMonth(t *testing.T) {
	view := NewCalendarView(calendarClock())
	grid := view.BuildGrid(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local), nil)

	days := 0
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell == nil {
				continue
			}
			days++
			assert.Equal(t, time.March, grid.Month)
			assert.Contains(t, cell.Date, "2026-03-")
		}
	}
	assert.Equal(t, 31, days)
}

func TestBuildGridDayStates(t *testing.T) {
	view := NewCalendarView(calendarClock())
	grid := view.BuildGrid(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), nil)

	var yesterday, today, tomorrow *DayCell
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell == nil {
				continue
			}
			switch cell.Day {
			case 14:
				yesterday = cell
			case 15:
				today = cell
			case 16:
				tomorrow = cell
			}
		}
	}
	require.NotNil(t, yesterday)
	require.NotNil(t, today)
	require.NotNil(t, tomorrow)

	assert.True(t, yesterday.IsPast)
	assert.False(t, yesterday.IsToday)
	assert.False(t, today.IsPast, "today is never past")
	assert.True(t, today.IsToday)
	assert.False(t, tomorrow.IsPast)
	assert.False(t, tomorrow.IsToday)
}

func TestBuildGridBadgesCapAtThree(t *testing.T) {
	times := []string{"07:00", "08:30", "09:00", "10:15", "14:00"}
	var slots []models.TeeTime
	for _, tm := range times {
		slots = append(slots, models.TeeTime{Date: "2026-03-20", Time: tm})
	}

	view := NewCalendarView(calendarClock())
	grid := view.BuildGrid(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), slots)

	var day20 *DayCell
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell != nil && cell.Day == 20 {
				day20 = cell
			}
		}
	}
	require.NotNil(t, day20)
	// First three in given order, remainder collapsed to an overflow count.
	assert.Equal(t, []string{"07:00", "08:30", "09:00"}, day20.Badges)
	assert.Equal(t, 2, day20.Overflow)
}

func TestBuildGridBadgesKeepGivenOrder(t *testing.T) {
	slots := []models.TeeTime{
		{Date: "2026-03-20", Time: "14:00"},
		{Date: "2026-03-20", Time: "07:00"},
	}

	view := NewCalendarView(calendarClock())
	grid := view.BuildGrid(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), slots)

	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell != nil && cell.Day == 20 {
				assert.Equal(t, []string{"14:00", "07:00"}, cell.Badges)
			}
		}
	}
}

func TestClickPastDateIsSwallowed(t *testing.T) {
	view := NewCalendarView(calendarClock())

	called := false
	accepted := view.Click("2026-03-14", func(string) { called = true })

	assert.False(t, accepted)
	assert.False(t, called, "no callback may fire for a past day")
	assert.Empty(t, view.Selected())
}

func TestClickSelectableDate(t *testing.T) {
	view := NewCalendarView(calendarClock())

	var clicked string
	accepted := view.Click("2026-03-16", func(date string) { clicked = date })

	assert.True(t, accepted)
	assert.Equal(t, "2026-03-16", clicked)
	assert.Equal(t, "2026-03-16", view.Selected())

	grid := view.BuildGrid(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), nil)
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell != nil && cell.Day == 16 {
				assert.True(t, cell.IsSelected)
			}
		}
	}
}

func TestClickTodayIsSelectable(t *testing.T) {
	view := NewCalendarView(calendarClock())
	assert.True(t, view.Click("2026-03-15", nil))
}
