// File: services/inventory/editor.go
package inventory

import (
	"strconv"

	"fairway/models"
	"fairway/utils"
)

// TeeTimeForm is the editor's form state, one member per field. The string
// values mirror the form inputs; parsing happens at submission.
type TeeTimeForm struct {
	Hour           string `json:"hour"`
	Minute         string `json:"minute"`
	AvailableSlots string `json:"availableSlots"`
	AgentPrice     string `json:"agentPrice"`
	Note           string `json:"note"`
}

// EditorCallbacks is how the editor hands validated payloads back to its
// caller. The editor itself never persists anything.
type EditorCallbacks struct {
	OnSave   func(models.TeeTimePayload) error
	OnUpdate func(id string, update models.TeeTimeUpdate) error
	OnDelete func(id string) error
}

// EditorSession is the create-or-edit workflow for the tee times of one fixed
// date. Whether the date is past is computed once at open; every mutating
// path re-checks it before invoking a callback.
type EditorSession struct {
	Date       string
	CourseName string
	Existing   []models.TeeTime
	Form       TeeTimeForm

	isDatePast bool
	editingID  string
	clock      utils.Clock
}

// NewEditorSession opens the editor for one date. existing must already be
// filtered to that date by the caller.
func NewEditorSession(date, courseName string, existing []models.TeeTime, clock utils.Clock) *EditorSession {
	return &EditorSession{
		Date:       date,
		CourseName: courseName,
		Existing:   existing,
		isDatePast: utils.IsPastDateString(date, clock),
		clock:      clock,
	}
}

// IsDatePast reports whether every mutating control is disabled.
func (s *EditorSession) IsDatePast() bool { return s.isDatePast }

// EditingID returns the id of the record selected for edit, or "".
func (s *EditorSession) EditingID() string { return s.editingID }

// Submit validates the form and dispatches to OnUpdate when a record is
// selected for edit, OnSave otherwise. The first failed check wins and
// nothing is dispatched. Once dispatched the form resets and edit mode exits
// regardless of the callback's result; persistence is the caller's concern.
func (s *EditorSession) Submit(cb EditorCallbacks) error {
	if s.isDatePast {
		return ErrPastDate
	}
	if s.Form.Hour == "" || s.Form.Minute == "" {
		return &ValidationError{Message: "select both hour and minute"}
	}
	if s.Form.AvailableSlots == "" {
		return &ValidationError{Message: "enter the number of available slots"}
	}
	if s.Form.AgentPrice == "" {
		return &ValidationError{Message: "enter the agent price"}
	}

	hour, err := strconv.Atoi(s.Form.Hour)
	if err != nil || hour < 0 || hour > 23 {
		return &ValidationError{Message: "hour must be between 0 and 23"}
	}
	minute, err := strconv.Atoi(s.Form.Minute)
	if err != nil || minute < 0 || minute > 59 {
		return &ValidationError{Message: "minute must be between 0 and 59"}
	}
	availableSlots, err := strconv.Atoi(s.Form.AvailableSlots)
	if err != nil || availableSlots < models.MinAvailableSlots || availableSlots > models.MaxAvailableSlots {
		return &ValidationError{Message: "available slots must be between 1 and 20"}
	}
	agentPrice, err := strconv.Atoi(s.Form.AgentPrice)
	if err != nil || agentPrice < 0 {
		return &ValidationError{Message: "agent price must not be negative"}
	}

	slotTime := models.ComposeSlotTime(hour, minute)

	var dispatchErr error
	if s.editingID != "" {
		if cb.OnUpdate != nil {
			dispatchErr = cb.OnUpdate(s.editingID, models.TeeTimeUpdate{
				Time:           slotTime,
				AvailableSlots: availableSlots,
				AgentPrice:     agentPrice,
				Note:           s.Form.Note,
			})
		}
	} else if cb.OnSave != nil {
		dispatchErr = cb.OnSave(models.TeeTimePayload{
			Date:           s.Date,
			Time:           slotTime,
			AvailableSlots: availableSlots,
			AgentPrice:     agentPrice,
			Note:           s.Form.Note,
		})
	}

	s.reset()
	return dispatchErr
}

// StartEdit populates the form from an existing record and remembers its id.
// Refused outright on a past date.
func (s *EditorSession) StartEdit(id string) error {
	if s.isDatePast {
		return ErrPastDate
	}
	for _, t := range s.Existing {
		if t.ID != id {
			continue
		}
		hour, minute, err := models.ParseSlotTime(t.Time)
		if err != nil {
			return &ValidationError{Message: "stored tee time has an invalid time"}
		}
		s.Form = TeeTimeForm{
			Hour:           strconv.Itoa(hour),
			Minute:         strconv.Itoa(minute),
			AvailableSlots: strconv.Itoa(t.AvailableSlots),
			AgentPrice:     strconv.Itoa(t.AgentPrice),
			Note:           t.Note,
		}
		s.editingID = id
		return nil
	}
	return ErrNotFound
}

// Delete hands the id straight to OnDelete; confirmation, if any, is the
// caller's concern. Refused outright on a past date.
func (s *EditorSession) Delete(id string, cb EditorCallbacks) error {
	if s.isDatePast {
		return ErrPastDate
	}
	if cb.OnDelete != nil {
		return cb.OnDelete(id)
	}
	return nil
}

// Cancel resets the form and exits edit mode, then notifies the caller.
func (s *EditorSession) Cancel(onClose func()) {
	s.reset()
	if onClose != nil {
		onClose()
	}
}

func (s *EditorSession) reset() {
	s.Form = TeeTimeForm{}
	s.editingID = ""
}
