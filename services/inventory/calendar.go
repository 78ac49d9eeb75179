// File: services/inventory/calendar.go
package inventory

import (
	"time"

	"fairway/models"
	"fairway/utils"
)

// maxDayBadges caps the time badges shown per day cell; anything beyond is
// collapsed into an overflow count.
const maxDayBadges = 3

// DayCell is one selectable day of the month grid.
type DayCell struct {
	Day        int      `json:"day"`
	Date       string   `json:"date"` // "YYYY-MM-DD"
	IsToday    bool     `json:"isToday"`
	IsPast     bool     `json:"isPast"`
	IsSelected bool     `json:"isSelected"`
	Badges     []string `json:"badges"` // up to maxDayBadges slot times, in given order
	Overflow   int      `json:"overflow"`
}

// MonthGrid is the rendered month: week rows of seven cells, nil where the
// row extends past the month's own days. Days of adjacent months are never
// included.
type MonthGrid struct {
	Year  int          `json:"year"`
	Month time.Month   `json:"month"`
	Weeks [][]*DayCell `json:"weeks"`
}

// CalendarView renders month grids over the loaded tee-time collection and
// holds only the ephemeral selected day.
type CalendarView struct {
	Clock    utils.Clock
	selected string
}

// NewCalendarView constructs a calendar over the given clock.
func NewCalendarView(clock utils.Clock) *CalendarView {
	return &CalendarView{Clock: clock}
}

// Selected returns the currently selected date string, if any.
func (v *CalendarView) Selected() string { return v.selected }

// Click handles a day-cell click. Clicks on past days are swallowed: no
// callback fires and the selection does not change. Otherwise the day becomes
// selected and onDateClick receives its "YYYY-MM-DD" string.
func (v *CalendarView) Click(date string, onDateClick func(string)) bool {
	if utils.IsPastDateString(date, v.Clock) {
		return false
	}
	v.selected = date
	if onDateClick != nil {
		onDateClick(date)
	}
	return true
}

// BuildGrid renders the month containing the given date. The first day sits
// at its weekday column with the earlier cells of that row left empty; slot
// badges are aggregated per day from teeTimes in the order given, with no
// implied sort.
func (v *CalendarView) BuildGrid(month time.Time, teeTimes []models.TeeTime) MonthGrid {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDate := make(map[string][]string)
	for _, t := range teeTimes {
		byDate[t.Date] = append(byDate[t.Date], t.Time)
	}

	grid := MonthGrid{Year: first.Year(), Month: first.Month()}
	week := make([]*DayCell, 7)
	col := int(first.Weekday())

	for day := 1; day <= daysInMonth; day++ {
		date := utils.FormatDate(time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.Local))
		times := byDate[date]
		badges := times
		overflow := 0
		if len(times) > maxDayBadges {
			badges = times[:maxDayBadges]
			overflow = len(times) - maxDayBadges
		}
		week[col] = &DayCell{
			Day:        day,
			Date:       date,
			IsToday:    utils.IsTodayString(date, v.Clock),
			IsPast:     utils.IsPastDateString(date, v.Clock),
			IsSelected: date == v.selected,
			Badges:     badges,
			Overflow:   overflow,
		}
		col++
		if col == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = make([]*DayCell, 7)
			col = 0
		}
	}
	if col > 0 {
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}
