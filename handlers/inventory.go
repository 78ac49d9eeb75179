// File: handlers/inventory.go
package handlers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	courseRepo "fairway/database/repository/course"
	"fairway/middleware"
	"fairway/models"
	"fairway/services/inventory"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryHandler exposes the tee-time inventory screen: course selection,
// the month calendar, and the per-date slot editor. One page controller is
// kept per operator, mirroring the single-writer administrative usage.
type InventoryHandler struct {
	Svc     inventory.Service
	Courses courseRepo.CourseRepository
	Clock   utils.Clock

	mu          sync.Mutex
	controllers map[string]*controllerEntry
}

// controllerEntry remembers the identity a controller was scoped for, so a
// role or course reassignment discards the stale scope.
type controllerEntry struct {
	ctrl     *inventory.Controller
	role     string
	courseID string
}

// NewInventoryHandler constructs the inventory handler.
func NewInventoryHandler(svc inventory.Service, courses courseRepo.CourseRepository, clock utils.Clock) *InventoryHandler {
	return &InventoryHandler{
		Svc:         svc,
		Courses:     courses,
		Clock:       clock,
		controllers: make(map[string]*controllerEntry),
	}
}

// controllerFor returns the operator's page controller, creating it (and
// auto-selecting the course for single-course operators) on first use. A
// cached controller is rebuilt when the operator's role or course assignment
// no longer matches the one it was scoped for.
func (h *InventoryHandler) controllerFor(c *gin.Context) (*inventory.Controller, error) {
	operator := models.User{
		ID:       c.GetString(middleware.CtxUserID),
		Role:     c.GetString(middleware.CtxUserRole),
		CourseID: c.GetString(middleware.CtxCourseID),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if entry, ok := h.controllers[operator.ID]; ok {
		if entry.role == operator.Role && entry.courseID == operator.CourseID {
			return entry.ctrl, nil
		}
		delete(h.controllers, operator.ID)
	}

	scope, err := inventory.ScopeForOperator(&operator, h.Courses)
	if err != nil {
		return nil, err
	}
	ctrl := inventory.NewController(h.Svc, scope, operator.ID, h.Clock)
	if err := ctrl.AutoSelect(c.Request.Context()); err != nil {
		return nil, err
	}
	h.controllers[operator.ID] = &controllerEntry{
		ctrl:     ctrl,
		role:     operator.Role,
		courseID: operator.CourseID,
	}
	return ctrl, nil
}

// respondError maps inventory errors onto HTTP statuses: operator refusals
// are 4xx, anything else is a storage failure.
func respondError(c *gin.Context, err error) {
	switch {
	case inventory.IsRefusal(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, inventory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("inventory operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed", "message": err.Error()})
	}
}

// editorView is the editor state returned to the UI after open/edit actions.
type editorView struct {
	Date       string                `json:"date"`
	CourseName string                `json:"courseName"`
	IsDatePast bool                  `json:"isDatePast"`
	EditingID  string                `json:"editingId,omitempty"`
	Form       inventory.TeeTimeForm `json:"form"`
	Existing   []models.TeeTime      `json:"existing"`
}

func viewOf(ed *inventory.EditorSession) editorView {
	return editorView{
		Date:       ed.Date,
		CourseName: ed.CourseName,
		IsDatePast: ed.IsDatePast(),
		EditingID:  ed.EditingID(),
		Form:       ed.Form,
		Existing:   ed.Existing,
	}
}

// VisibleCoursesHandler lists the courses the operator may manage, with the
// auto-selected active course when their scope fixes one.
func (h *InventoryHandler) VisibleCoursesHandler(c *gin.Context) {
	ctrl, err := h.controllerFor(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	courses, err := ctrl.VisibleCourses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"courses": courses}
	if active := ctrl.ActiveCourse(); active != nil {
		resp["activeCourseId"] = active.ID
	}
	c.JSON(http.StatusOK, resp)
}

// SelectCourseHandler switches the active course and loads its tee times.
func (h *InventoryHandler) SelectCourseHandler(c *gin.Context) {
	var body struct {
		CourseID string `json:"courseId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid courseId in request body"})
		return
	}

	ctrl, err := h.controllerFor(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err := ctrl.SelectCourse(c.Request.Context(), body.CourseID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teeTimes": ctrl.TeeTimes()})
}

// RefreshHandler reloads the active course's tee times (page-focus signal).
func (h *InventoryHandler) RefreshHandler(c *gin.Context) {
	ctrl, err := h.controllerFor(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err := ctrl.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teeTimes": ctrl.TeeTimes()})
}

// CalendarHandler renders the month grid for the active course. The month
// query parameter is "YYYY-MM"; it defaults to the current month.
func (h *InventoryHandler) CalendarHandler(c *gin.Context) {
	ctrl, err := h.controllerFor(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	month := h.Clock.Now()
	if m := c.Query("month"); m != "" {
		parsed, err := time.ParseInLocation("2006-01", m, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month; expected YYYY-MM"})
			return
		}
		month = parsed
	}

	grid, err := ctrl.MonthGrid(month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": grid})
}

// DateClickHandler routes a calendar click: past dates and no-course states
// are refused, otherwise the editor opens for that date.
func (h *InventoryHandler) DateClickHandler(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date in request body"})
		return
	}

	ctrl, err := h.controllerFor(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	ed, err := ctrl.HandleDateClick(body.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"editor": viewOf(ed)})
}

// submitRequest mirrors the editor's form inputs.
type submitRequest struct {
	Hour           string `json:"hour"`
	Minute         string `json:"minute"`
	AvailableSlots string `json:"availableSlots"`
	AgentPrice     string `json:"agentPrice"`
	Note           string `json:"note"`
}

// SubmitHandler submits the editor form: it creates a tee time, or updates
// the record currently selected for edit.
func (h *InventoryHandler) SubmitHandler(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ctrl, err := h.controllerFor(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	ed := ctrl.Editor()
	if ed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No editor open; click a date first"})
		return
	}

	ed.Form = inventory.TeeTimeForm{
		Hour:           req.Hour,
		Minute:         req.Minute,
		AvailableSlots: req.AvailableSlots,
		AgentPrice:     req.AgentPrice,
		Note:           req.Note,
	}

	var saved *models.TeeTime
	err = ed.Submit(inventory.EditorCallbacks{
		OnSave: func(payload models.TeeTimePayload) error {
			slot, err := ctrl.SaveTeeTime(c.Request.Context(), payload)
			if err != nil {
				return err
			}
			saved = slot
			return nil
		},
		OnUpdate: func(id string, update models.TeeTimeUpdate) error {
			return ctrl.UpdateTeeTime(c.Request.Context(), id, update)
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"teeTimes": ctrl.TeeTimes()}
	if saved != nil {
		resp["teeTime"] = saved
	}
	c.JSON(http.StatusOK, resp)
}

// StartEditHandler selects an existing record for edit, returning the
// populated form.
func (h *InventoryHandler) StartEditHandler(c *gin.Context) {
	id := c.Param("teeTimeID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tee time ID in path"})
		return
	}

	ctrl, err := h.controllerFor(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	ed := ctrl.Editor()
	if ed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No editor open; click a date first"})
		return
	}
	if err := ed.StartEdit(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"editor": viewOf(ed)})
}

// DeleteHandler removes a tee time. The controller insists on confirm=true;
// the editor itself only guards the past-date rule.
func (h *InventoryHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("teeTimeID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tee time ID in path"})
		return
	}
	confirmed := c.Query("confirm") == "true"

	ctrl, err := h.controllerFor(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	ed := ctrl.Editor()
	if ed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No editor open; click a date first"})
		return
	}
	err = ed.Delete(id, inventory.EditorCallbacks{
		OnDelete: func(id string) error {
			return ctrl.DeleteTeeTime(c.Request.Context(), id, confirmed)
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tee time deleted successfully", "teeTimes": ctrl.TeeTimes()})
}

// CancelEditorHandler resets the form and closes the editor.
func (h *InventoryHandler) CancelEditorHandler(c *gin.Context) {
	ctrl, err := h.controllerFor(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if ed := ctrl.Editor(); ed != nil {
		ed.Cancel(ctrl.CloseEditor)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Editor closed"})
}
