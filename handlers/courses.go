// File: handlers/courses.go
package handlers

import (
	"net/http"

	"fairway/middleware"
	"fairway/models"
	"fairway/services/course"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CourseHandler exposes course reference-data CRUD.
type CourseHandler struct {
	Service course.CourseService
}

// NewCourseHandler constructs the course handler.
func NewCourseHandler(svc course.CourseService) *CourseHandler {
	return &CourseHandler{Service: svc}
}

// ListCoursesHandler lists courses scoped by the operator's role: elevated
// roles see everything, a course admin sees only their own course.
func (h *CourseHandler) ListCoursesHandler(c *gin.Context) {
	role := c.GetString(middleware.CtxUserRole)

	if models.IsElevatedRole(role) {
		courses, err := h.Service.GetAllCourses(c.Request.Context())
		if err != nil {
			utils.GetLogger().Error("Failed to list courses", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courses", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"courses": courses})
		return
	}

	courseID := c.GetString(middleware.CtxCourseID)
	if courseID == "" {
		c.JSON(http.StatusOK, gin.H{"courses": []models.Course{}})
		return
	}
	own, err := h.Service.GetCourseByID(c.Request.Context(), courseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": []models.Course{*own}})
}

// GetCourseHandler fetches one course.
func (h *CourseHandler) GetCourseHandler(c *gin.Context) {
	courseData, err := h.Service.GetCourseByID(c.Request.Context(), c.Param("courseID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": courseData})
}

// CreateCourseHandler adds a course.
func (h *CourseHandler) CreateCourseHandler(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateCourse(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("Failed to create course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": created})
}

// UpdateCourseHandler applies a partial course update.
func (h *CourseHandler) UpdateCourseHandler(c *gin.Context) {
	var req models.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateCourse(c.Request.Context(), c.Param("courseID"), req)
	if err != nil {
		utils.GetLogger().Error("Failed to update course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": updated})
}

// DeleteCourseHandler removes a course.
func (h *CourseHandler) DeleteCourseHandler(c *gin.Context) {
	if err := h.Service.DeleteCourse(c.Request.Context(), c.Param("courseID")); err != nil {
		utils.GetLogger().Error("Failed to delete course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
