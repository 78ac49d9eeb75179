// File: handlers/quotations.go
package handlers

import (
	"net/http"

	"fairway/middleware"
	"fairway/models"
	"fairway/services/quotation"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotationHandler exposes ad-hoc quotation documents.
type QuotationHandler struct {
	Service quotation.QuotationService
}

// NewQuotationHandler constructs the quotation handler.
func NewQuotationHandler(svc quotation.QuotationService) *QuotationHandler {
	return &QuotationHandler{Service: svc}
}

// CreateQuotationHandler prepares a quotation for a customer.
func (h *QuotationHandler) CreateQuotationHandler(c *gin.Context) {
	var req models.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	operatorID := c.GetString(middleware.CtxUserID)
	created, err := h.Service.CreateQuotation(c.Request.Context(), operatorID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to create quotation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quotation", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": created})
}

// ListQuotationsHandler lists all quotations, most recent first.
func (h *QuotationHandler) ListQuotationsHandler(c *gin.Context) {
	quotations, err := h.Service.GetAllQuotations(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list quotations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotations", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotations": quotations})
}

// GetQuotationHandler fetches one quotation.
func (h *QuotationHandler) GetQuotationHandler(c *gin.Context) {
	quote, err := h.Service.GetQuotationByID(c.Request.Context(), c.Param("quotationID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": quote})
}

// DeleteQuotationHandler removes a quotation.
func (h *QuotationHandler) DeleteQuotationHandler(c *gin.Context) {
	if err := h.Service.DeleteQuotation(c.Request.Context(), c.Param("quotationID")); err != nil {
		utils.GetLogger().Error("Failed to delete quotation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quotation", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quotation deleted successfully"})
}
