package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"fairway/models"
	"fairway/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) ListTeeTimes(ctx context.Context, courseID string) ([]models.TeeTime, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeeTime), args.Error(1)
}

func (m *MockService) ListTeeTimesForDate(ctx context.Context, courseID, date string) ([]models.TeeTime, error) {
	args := m.Called(ctx, courseID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeeTime), args.Error(1)
}

func (m *MockService) CreateTeeTime(ctx context.Context, operatorID, courseID string, payload models.TeeTimePayload) (*models.TeeTime, error) {
	args := m.Called(ctx, operatorID, courseID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeeTime), args.Error(1)
}

func (m *MockService) UpdateTeeTime(ctx context.Context, id string, update models.TeeTimeUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockService) DeleteTeeTime(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// stubScope is a fixed-answer CourseScope for controller tests.
type stubScope struct {
	courses []models.Course
	autoID  string
	hasAuto bool
}

func (s stubScope) VisibleCourses(context.Context) ([]models.Course, error) {
	return s.courses, nil
}

func (s stubScope) AutoSelected() (string, bool) { return s.autoID, s.hasAuto }

func controllerClock() utils.FixedClock {
	return utils.FixedClock{Instant: time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)}
}

func pineValley() models.Course {
	return models.Course{ID: "course-1", Name: "Pine Valley", Active: true}
}

func elevated(courses ...models.Course) stubScope {
	return stubScope{courses: courses}
}

func newTestController(svc Service, scope CourseScope) *Controller {
	return NewController(svc, scope, "op-1", controllerClock())
}

func TestSelectCourseLoadsSlots(t *testing.T) {
	svc := new(MockService)
	loaded := []models.TeeTime{
		{ID: "a", CourseID: "course-1", Date: "2026-03-20", Time: "07:00"},
		{ID: "b", CourseID: "course-1", Date: "2026-03-20", Time: "09:00"},
	}
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return(loaded, nil)

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))

	assert.Equal(t, loaded, ctrl.TeeTimes())
	require.NotNil(t, ctrl.ActiveCourse())
	assert.Equal(t, "course-1", ctrl.ActiveCourse().ID)
	svc.AssertExpectations(t)
}

func TestSelectCourseOutsideScopeRefused(t *testing.T) {
	svc := new(MockService)
	ctrl := newTestController(svc, elevated(pineValley()))

	err := ctrl.SelectCourse(context.Background(), "course-9")
	assert.ErrorIs(t, err, ErrCourseNotVisible)
	assert.Nil(t, ctrl.ActiveCourse())
	svc.AssertNotCalled(t, "ListTeeTimes", mock.Anything, mock.Anything)
}

func TestLoadIsIdempotent(t *testing.T) {
	svc := new(MockService)
	loaded := []models.TeeTime{
		{ID: "a", Date: "2026-03-20", Time: "07:00"},
		{ID: "b", Date: "2026-03-21", Time: "06:30"},
	}
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return(loaded, nil)

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))
	first := ctrl.TeeTimes()
	require.NoError(t, ctrl.Refresh(context.Background()))
	second := ctrl.TeeTimes()

	assert.Equal(t, first, second)
}

func TestAutoSelectForSingleCourseOperator(t *testing.T) {
	svc := new(MockService)
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return([]models.TeeTime{}, nil)

	scope := stubScope{courses: []models.Course{pineValley()}, autoID: "course-1", hasAuto: true}
	ctrl := newTestController(svc, scope)

	require.NoError(t, ctrl.AutoSelect(context.Background()))
	require.NotNil(t, ctrl.ActiveCourse())
	assert.Equal(t, "course-1", ctrl.ActiveCourse().ID)
}

func TestAutoSelectNoopForElevatedOperator(t *testing.T) {
	svc := new(MockService)
	ctrl := newTestController(svc, elevated(pineValley()))

	require.NoError(t, ctrl.AutoSelect(context.Background()))
	assert.Nil(t, ctrl.ActiveCourse(), "elevated operators must pick explicitly")
}

func TestHandleDateClickWithoutCourse(t *testing.T) {
	ctrl := newTestController(new(MockService), elevated(pineValley()))

	_, err := ctrl.HandleDateClick("2026-03-20")
	assert.ErrorIs(t, err, ErrNoCourseSelected)
}

func TestHandleDateClickPastDate(t *testing.T) {
	svc := new(MockService)
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return([]models.TeeTime{}, nil)

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))

	_, err := ctrl.HandleDateClick("2026-03-14")
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Nil(t, ctrl.Editor())
}

func TestHandleDateClickOpensEditorWithDaySlots(t *testing.T) {
	svc := new(MockService)
	loaded := []models.TeeTime{
		{ID: "a", Date: "2026-03-20", Time: "07:00"},
		{ID: "b", Date: "2026-03-21", Time: "06:30"},
	}
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return(loaded, nil)

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))

	ed, err := ctrl.HandleDateClick("2026-03-20")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-20", ed.Date)
	assert.Equal(t, "Pine Valley", ed.CourseName)
	require.Len(t, ed.Existing, 1)
	assert.Equal(t, "a", ed.Existing[0].ID)
}

func TestSaveTeeTimeAppendsOnlyOnSuccess(t *testing.T) {
	svc := new(MockService)
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return([]models.TeeTime{}, nil)

	payload := models.TeeTimePayload{Date: "2026-03-20", Time: "14:30", AvailableSlots: 4, AgentPrice: 150000}
	created := &models.TeeTime{ID: "new-id", CourseID: "course-1", CourseName: "Pine Valley", Date: "2026-03-20", Time: "14:30", AvailableSlots: 4, AgentPrice: 150000}
	svc.On("CreateTeeTime", mock.Anything, "op-1", "course-1", payload).Return(created, nil)

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))
	_, err := ctrl.HandleDateClick("2026-03-20")
	require.NoError(t, err)

	slot, err := ctrl.SaveTeeTime(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "new-id", slot.ID)

	slots := ctrl.TeeTimes()
	require.Len(t, slots, 1)
	assert.Equal(t, "new-id", slots[0].ID)
	assert.Nil(t, ctrl.Editor(), "editor closes after a confirmed save")
}

func TestSaveTeeTimeFailureLeavesStateUnchanged(t *testing.T) {
	svc := new(MockService)
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return([]models.TeeTime{}, nil)
	svc.On("CreateTeeTime", mock.Anything, "op-1", "course-1", mock.Anything).
		Return(nil, errors.New("write failed"))

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))
	_, err := ctrl.HandleDateClick("2026-03-20")
	require.NoError(t, err)

	_, err = ctrl.SaveTeeTime(context.Background(), models.TeeTimePayload{Date: "2026-03-20", Time: "14:30", AvailableSlots: 4})
	assert.Error(t, err)
	assert.Empty(t, ctrl.TeeTimes())
	assert.NotNil(t, ctrl.Editor(), "editor stays open on failure")
}

func TestSaveTeeTimeWithoutCourse(t *testing.T) {
	ctrl := newTestController(new(MockService), elevated(pineValley()))
	_, err := ctrl.SaveTeeTime(context.Background(), models.TeeTimePayload{Date: "2026-03-20"})
	assert.ErrorIs(t, err, ErrNoCourseSelected)
}

func TestUpdateTeeTimeMergesOnSuccess(t *testing.T) {
	svc := new(MockService)
	loaded := []models.TeeTime{{ID: "a", Date: "2026-03-20", Time: "07:00", AvailableSlots: 4, AgentPrice: 100, Note: "old"}}
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return(loaded, nil)

	update := models.TeeTimeUpdate{Time: "07:00", AvailableSlots: 2, AgentPrice: 100, Note: "old"}
	svc.On("UpdateTeeTime", mock.Anything, "a", update).Return(nil)

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))

	require.NoError(t, ctrl.UpdateTeeTime(context.Background(), "a", update))
	slots := ctrl.TeeTimes()
	require.Len(t, slots, 1)
	assert.Equal(t, 2, slots[0].AvailableSlots)
}

func TestUpdateTeeTimeFailureLeavesStateUnchanged(t *testing.T) {
	svc := new(MockService)
	loaded := []models.TeeTime{{ID: "a", Date: "2026-03-20", Time: "07:00", AvailableSlots: 4}}
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return(loaded, nil)
	svc.On("UpdateTeeTime", mock.Anything, "a", mock.Anything).Return(errors.New("write failed"))

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))

	err := ctrl.UpdateTeeTime(context.Background(), "a", models.TeeTimeUpdate{Time: "07:00", AvailableSlots: 2})
	assert.Error(t, err)
	assert.Equal(t, 4, ctrl.TeeTimes()[0].AvailableSlots)
}

func TestDeleteTeeTimeRequiresConfirmation(t *testing.T) {
	svc := new(MockService)
	loaded := []models.TeeTime{{ID: "a", Date: "2026-03-20", Time: "07:00"}}
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return(loaded, nil)

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))

	err := ctrl.DeleteTeeTime(context.Background(), "a", false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Len(t, ctrl.TeeTimes(), 1)
	svc.AssertNotCalled(t, "DeleteTeeTime", mock.Anything, mock.Anything)
}

func TestDeleteTeeTimeRemovesOnSuccess(t *testing.T) {
	svc := new(MockService)
	loaded := []models.TeeTime{{ID: "a", Date: "2026-03-20", Time: "07:00"}}
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return(loaded, nil)
	svc.On("DeleteTeeTime", mock.Anything, "a").Return(nil)

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))

	require.NoError(t, ctrl.DeleteTeeTime(context.Background(), "a", true))
	assert.Empty(t, ctrl.TeeTimes())
}

func TestDeleteTeeTimeFailureLeavesStateUnchanged(t *testing.T) {
	svc := new(MockService)
	loaded := []models.TeeTime{{ID: "a", Date: "2026-03-20", Time: "07:00"}}
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return(loaded, nil)
	svc.On("DeleteTeeTime", mock.Anything, "a").Return(errors.New("write failed"))

	ctrl := newTestController(svc, elevated(pineValley()))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))

	assert.Error(t, ctrl.DeleteTeeTime(context.Background(), "a", true))
	assert.Len(t, ctrl.TeeTimes(), 1)
}

func TestSwitchingCoursesReplacesCollection(t *testing.T) {
	svc := new(MockService)
	svc.On("ListTeeTimes", mock.Anything, "course-1").Return([]models.TeeTime{{ID: "a"}}, nil)
	svc.On("ListTeeTimes", mock.Anything, "course-2").Return([]models.TeeTime{{ID: "b"}}, nil)

	second := models.Course{ID: "course-2", Name: "St Andrews", Active: true}
	ctrl := newTestController(svc, elevated(pineValley(), second))

	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-1"))
	require.NoError(t, ctrl.SelectCourse(context.Background(), "course-2"))

	slots := ctrl.TeeTimes()
	require.Len(t, slots, 1)
	assert.Equal(t, "b", slots[0].ID)
}

func TestMonthGridRequiresCourse(t *testing.T) {
	ctrl := newTestController(new(MockService), elevated(pineValley()))
	_, err := ctrl.MonthGrid(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local))
	assert.ErrorIs(t, err, ErrNoCourseSelected)
}
