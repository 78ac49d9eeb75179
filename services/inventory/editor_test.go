package inventory

import (
	"errors"
	"testing"
	"time"

	"fairway/models"
	"fairway/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editorClock() utils.FixedClock {
	return utils.FixedClock{Instant: time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)}
}

// recorder captures what the editor dispatches.
type recorder struct {
	saved    *models.TeeTimePayload
	updated  *models.TeeTimeUpdate
	updateID string
	deleted  string
}

func (r *recorder) callbacks() EditorCallbacks {
	return EditorCallbacks{
		OnSave: func(p models.TeeTimePayload) error {
			r.saved = &p
			return nil
		},
		OnUpdate: func(id string, u models.TeeTimeUpdate) error {
			r.updateID = id
			r.updated = &u
			return nil
		},
		OnDelete: func(id string) error {
			r.deleted = id
			return nil
		},
	}
}

func TestSubmitCreatesTeeTime(t *testing.T) {
	ed := NewEditorSession("2026-03-20", "Pine Valley", nil, editorClock())
	ed.Form = TeeTimeForm{Hour: "14", Minute: "30", AvailableSlots: "4", AgentPrice: "150000", Note: ""}

	rec := &recorder{}
	require.NoError(t, ed.Submit(rec.callbacks()))

	require.NotNil(t, rec.saved)
	assert.Equal(t, models.TeeTimePayload{
		Date:           "2026-03-20",
		Time:           "14:30",
		AvailableSlots: 4,
		AgentPrice:     150000,
		Note:           "",
	}, *rec.saved)
	assert.Nil(t, rec.updated)
	assert.Equal(t, TeeTimeForm{}, ed.Form, "form resets after submit")
}

func TestSubmitZeroPadsTime(t *testing.T) {
	ed := NewEditorSession("2026-03-20", "", nil, editorClock())
	ed.Form = TeeTimeForm{Hour: "9", Minute: "5", AvailableSlots: "2", AgentPrice: "0"}

	rec := &recorder{}
	require.NoError(t, ed.Submit(rec.callbacks()))
	require.NotNil(t, rec.saved)
	assert.Equal(t, "09:05", rec.saved.Time)
}

func TestSubmitValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		form    TeeTimeForm
		message string
	}{
		{"missing hour", TeeTimeForm{Minute: "30", AvailableSlots: "4", AgentPrice: "100"}, "select both hour and minute"},
		{"missing minute", TeeTimeForm{Hour: "14", AvailableSlots: "4", AgentPrice: "100"}, "select both hour and minute"},
		{"missing slots", TeeTimeForm{Hour: "14", Minute: "30", AgentPrice: "100"}, "enter the number of available slots"},
		{"missing price", TeeTimeForm{Hour: "14", Minute: "30", AvailableSlots: "4"}, "enter the agent price"},
		{"slots below range", TeeTimeForm{Hour: "14", Minute: "30", AvailableSlots: "0", AgentPrice: "100"}, "available slots must be between 1 and 20"},
		{"slots above range", TeeTimeForm{Hour: "14", Minute: "30", AvailableSlots: "21", AgentPrice: "100"}, "available slots must be between 1 and 20"},
		{"negative price", TeeTimeForm{Hour: "14", Minute: "30", AvailableSlots: "4", AgentPrice: "-5"}, "agent price must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := NewEditorSession("2026-03-20", "", nil, editorClock())
			ed.Form = tt.form

			rec := &recorder{}
			err := ed.Submit(rec.callbacks())
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Nil(t, rec.saved, "no callback may fire on a failed check")
			assert.Nil(t, rec.updated)
		})
	}
}

func TestSubmitResetsFormEvenWhenSaveFails(t *testing.T) {
	ed := NewEditorSession("2026-03-20", "", nil, editorClock())
	ed.Form = TeeTimeForm{Hour: "14", Minute: "30", AvailableSlots: "4", AgentPrice: "100"}

	err := ed.Submit(EditorCallbacks{
		OnSave: func(models.TeeTimePayload) error { return errors.New("write failed") },
	})

	assert.EqualError(t, err, "write failed")
	assert.Equal(t, TeeTimeForm{}, ed.Form, "the form does not wait on the caller's persistence result")
}

func TestSubmitExitsEditModeEvenWhenUpdateFails(t *testing.T) {
	existing := []models.TeeTime{{ID: "slot-1", Date: "2026-03-20", Time: "14:30", AvailableSlots: 4, AgentPrice: 100}}
	ed := NewEditorSession("2026-03-20", "", existing, editorClock())
	require.NoError(t, ed.StartEdit("slot-1"))

	err := ed.Submit(EditorCallbacks{
		OnUpdate: func(string, models.TeeTimeUpdate) error { return errors.New("write failed") },
	})

	assert.EqualError(t, err, "write failed")
	assert.Equal(t, TeeTimeForm{}, ed.Form)
	assert.Empty(t, ed.EditingID())
}

func TestSubmitOnPastDateRefused(t *testing.T) {
	ed := NewEditorSession("2026-03-14", "", nil, editorClock())
	assert.True(t, ed.IsDatePast())

	// Simulated bypass of the disabled control: the handler re-checks.
	ed.Form = TeeTimeForm{Hour: "14", Minute: "30", AvailableSlots: "4", AgentPrice: "100"}
	rec := &recorder{}
	err := ed.Submit(rec.callbacks())

	assert.ErrorIs(t, err, ErrPastDate)
	assert.Nil(t, rec.saved)
	assert.Nil(t, rec.updated)
}

func TestEditThenSubmitDispatchesUpdate(t *testing.T) {
	existing := []models.TeeTime{{
		ID:             "slot-1",
		Date:           "2026-03-20",
		Time:           "14:30",
		AvailableSlots: 4,
		AgentPrice:     150000,
		Note:           "front nine",
	}}
	ed := NewEditorSession("2026-03-20", "", existing, editorClock())

	require.NoError(t, ed.StartEdit("slot-1"))
	assert.Equal(t, "slot-1", ed.EditingID())
	assert.Equal(t, TeeTimeForm{
		Hour:           "14",
		Minute:         "30",
		AvailableSlots: "4",
		AgentPrice:     "150000",
		Note:           "front nine",
	}, ed.Form)

	ed.Form.AvailableSlots = "2"
	rec := &recorder{}
	require.NoError(t, ed.Submit(rec.callbacks()))

	assert.Nil(t, rec.saved, "editing must dispatch an update, not a save")
	require.NotNil(t, rec.updated)
	assert.Equal(t, "slot-1", rec.updateID)
	assert.Equal(t, 2, rec.updated.AvailableSlots)
	assert.Equal(t, "14:30", rec.updated.Time)
	assert.Empty(t, ed.EditingID(), "edit mode exits after submit")
}

func TestStartEditRoundTripsSingleDigitTime(t *testing.T) {
	existing := []models.TeeTime{{ID: "slot-1", Date: "2026-03-20", Time: "09:05", AvailableSlots: 2, AgentPrice: 100}}
	ed := NewEditorSession("2026-03-20", "", existing, editorClock())

	require.NoError(t, ed.StartEdit("slot-1"))
	assert.Equal(t, "9", ed.Form.Hour)
	assert.Equal(t, "5", ed.Form.Minute)
}

func TestStartEditOnPastDateRefused(t *testing.T) {
	existing := []models.TeeTime{{ID: "slot-1", Date: "2026-03-14", Time: "09:00", AvailableSlots: 2, AgentPrice: 100}}
	ed := NewEditorSession("2026-03-14", "", existing, editorClock())

	assert.ErrorIs(t, ed.StartEdit("slot-1"), ErrPastDate)
	assert.Empty(t, ed.EditingID())
}

func TestStartEditUnknownID(t *testing.T) {
	ed := NewEditorSession("2026-03-20", "", nil, editorClock())
	assert.ErrorIs(t, ed.StartEdit("missing"), ErrNotFound)
}

func TestDeleteCallsThroughOnFutureDate(t *testing.T) {
	ed := NewEditorSession("2026-03-20", "", nil, editorClock())
	rec := &recorder{}
	require.NoError(t, ed.Delete("slot-1", rec.callbacks()))
	assert.Equal(t, "slot-1", rec.deleted)
}

func TestDeleteOnPastDateRefused(t *testing.T) {
	ed := NewEditorSession("2026-03-14", "", nil, editorClock())
	rec := &recorder{}
	assert.ErrorIs(t, ed.Delete("slot-1", rec.callbacks()), ErrPastDate)
	assert.Empty(t, rec.deleted)
}

func TestCancelResetsAndNotifies(t *testing.T) {
	existing := []models.TeeTime{{ID: "slot-1", Date: "2026-03-20", Time: "09:00", AvailableSlots: 2, AgentPrice: 100}}
	ed := NewEditorSession("2026-03-20", "", existing, editorClock())
	require.NoError(t, ed.StartEdit("slot-1"))

	closed := false
	ed.Cancel(func() { closed = true })

	assert.True(t, closed)
	assert.Equal(t, TeeTimeForm{}, ed.Form)
	assert.Empty(t, ed.EditingID())
}
