// File: services/inventory/controller.go
package inventory

import (
	"context"
	"sync"
	"time"

	"fairway/models"
	"fairway/utils"
)

// Controller is the page-level orchestration for one operator's inventory
// screen. It exclusively owns the in-memory slot collection for the active
// course; the collection only ever reflects confirmed writes — every
// mutation persists first and touches local state only on success.
type Controller struct {
	mu sync.Mutex

	svc        Service
	scope      CourseScope
	operatorID string
	clock      utils.Clock

	activeCourse *models.Course
	teeTimes     []models.TeeTime
	calendar     *CalendarView
	editor       *EditorSession
}

// NewController builds a controller for one operator. For single-course
// operators the course is auto-selected on first use, not here: selection
// needs a context to load slots with.
func NewController(svc Service, scope CourseScope, operatorID string, clock utils.Clock) *Controller {
	return &Controller{
		svc:        svc,
		scope:      scope,
		operatorID: operatorID,
		clock:      clock,
		calendar:   NewCalendarView(clock),
	}
}

// VisibleCourses lists the courses the operator may manage, per their scope.
func (c *Controller) VisibleCourses(ctx context.Context) ([]models.Course, error) {
	return c.scope.VisibleCourses(ctx)
}

// AutoSelect selects the fixed course of a single-course operator, if their
// scope defines one and nothing is selected yet.
func (c *Controller) AutoSelect(ctx context.Context) error {
	courseID, ok := c.scope.AutoSelected()
	if !ok {
		return nil
	}
	c.mu.Lock()
	selected := c.activeCourse != nil
	c.mu.Unlock()
	if selected {
		return nil
	}
	return c.SelectCourse(ctx, courseID)
}

// SelectCourse switches the active course: the local collection is cleared,
// then the new course's slots are loaded (sorted by date then time) as the
// canonical in-memory set. Courses outside the operator's scope are refused.
func (c *Controller) SelectCourse(ctx context.Context, courseID string) error {
	visible, err := c.scope.VisibleCourses(ctx)
	if err != nil {
		return err
	}
	var course *models.Course
	for i := range visible {
		if visible[i].ID == courseID {
			course = &visible[i]
			break
		}
	}
	if course == nil {
		return ErrCourseNotVisible
	}

	c.mu.Lock()
	c.activeCourse = course
	c.teeTimes = nil
	c.editor = nil
	c.mu.Unlock()

	slots, err := c.svc.ListTeeTimes(ctx, courseID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.teeTimes = slots
	c.mu.Unlock()
	return nil
}

// Refresh reloads the active course's slots, e.g. when the page regains
// focus. No-op without an active course.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	course := c.activeCourse
	c.mu.Unlock()
	if course == nil {
		return ErrNoCourseSelected
	}

	slots, err := c.svc.ListTeeTimes(ctx, course.ID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.teeTimes = slots
	c.mu.Unlock()
	return nil
}

// ActiveCourse returns the currently selected course, or nil.
func (c *Controller) ActiveCourse() *models.Course {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeCourse
}

// TeeTimes returns a copy of the loaded slot collection.
func (c *Controller) TeeTimes() []models.TeeTime {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.TeeTime, len(c.teeTimes))
	copy(out, c.teeTimes)
	return out
}

// MonthGrid renders the month containing the given date over the loaded
// collection.
func (c *Controller) MonthGrid(month time.Time) (MonthGrid, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeCourse == nil {
		return MonthGrid{}, ErrNoCourseSelected
	}
	return c.calendar.BuildGrid(month, c.teeTimes), nil
}

// HandleDateClick routes a calendar click to the editor. Refused without an
// active course, and refused for past dates even though the calendar already
// suppresses those clicks.
func (c *Controller) HandleDateClick(date string) (*EditorSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeCourse == nil {
		return nil, ErrNoCourseSelected
	}
	if utils.IsPastDateString(date, c.clock) {
		return nil, ErrPastDate
	}

	var existing []models.TeeTime
	for _, t := range c.teeTimes {
		if t.Date == date {
			existing = append(existing, t)
		}
	}
	c.calendar.Click(date, nil)
	c.editor = NewEditorSession(date, c.activeCourse.Name, existing, c.clock)
	return c.editor, nil
}

// Editor returns the open editor session, or nil.
func (c *Controller) Editor() *EditorSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editor
}

// CloseEditor discards the open editor session.
func (c *Controller) CloseEditor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editor = nil
}

// SaveTeeTime persists a new slot for the active course and, only on success,
// appends the record (with its assigned id) to the local collection and
// closes the editor. On failure local state is left untouched.
func (c *Controller) SaveTeeTime(ctx context.Context, payload models.TeeTimePayload) (*models.TeeTime, error) {
	c.mu.Lock()
	course := c.activeCourse
	c.mu.Unlock()
	if course == nil {
		return nil, ErrNoCourseSelected
	}

	slot, err := c.svc.CreateTeeTime(ctx, c.operatorID, course.ID, payload)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.teeTimes = append(c.teeTimes, *slot)
	c.editor = nil
	c.mu.Unlock()
	return slot, nil
}

// UpdateTeeTime persists a partial update and, only on success, merges the
// changed fields into the matching local record.
func (c *Controller) UpdateTeeTime(ctx context.Context, id string, update models.TeeTimeUpdate) error {
	if err := c.svc.UpdateTeeTime(ctx, id, update); err != nil {
		return err
	}

	c.mu.Lock()
	for i := range c.teeTimes {
		if c.teeTimes[i].ID == id {
			c.teeTimes[i].Time = update.Time
			c.teeTimes[i].AvailableSlots = update.AvailableSlots
			c.teeTimes[i].AgentPrice = update.AgentPrice
			c.teeTimes[i].Note = update.Note
			break
		}
	}
	c.mu.Unlock()
	return nil
}

// DeleteTeeTime removes a slot after an explicit confirmation, and only on
// successful persistence removes it from the local collection.
func (c *Controller) DeleteTeeTime(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := c.svc.DeleteTeeTime(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	for i := range c.teeTimes {
		if c.teeTimes[i].ID == id {
			c.teeTimes = append(c.teeTimes[:i], c.teeTimes[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}
