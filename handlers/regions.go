// File: handlers/regions.go
package handlers

import (
	"net/http"

	"fairway/models"
	"fairway/services/region"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegionHandler exposes the country/province/city reference data.
type RegionHandler struct {
	Service region.RegionService
}

// NewRegionHandler constructs the region handler.
func NewRegionHandler(svc region.RegionService) *RegionHandler {
	return &RegionHandler{Service: svc}
}

// ListCountriesHandler lists all countries.
func (h *RegionHandler) ListCountriesHandler(c *gin.Context) {
	countries, err := h.Service.ListCountries(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list countries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list countries", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": countries})
}

// ListProvincesHandler lists the provinces of a country.
func (h *RegionHandler) ListProvincesHandler(c *gin.Context) {
	provinces, err := h.Service.ListProvinces(c.Request.Context(), c.Param("countryID"))
	if err != nil {
		utils.GetLogger().Error("Failed to list provinces", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list provinces", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": provinces})
}

// ListCitiesHandler lists the cities of a province.
func (h *RegionHandler) ListCitiesHandler(c *gin.Context) {
	cities, err := h.Service.ListCities(c.Request.Context(), c.Param("provinceID"))
	if err != nil {
		utils.GetLogger().Error("Failed to list cities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cities", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": cities})
}

// CreateRegionHandler adds a region node.
func (h *RegionHandler) CreateRegionHandler(c *gin.Context) {
	var req models.CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateRegion(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create region", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": created})
}

// DeleteRegionHandler removes a region node.
func (h *RegionHandler) DeleteRegionHandler(c *gin.Context) {
	if err := h.Service.DeleteRegion(c.Request.Context(), c.Param("regionID")); err != nil {
		utils.GetLogger().Error("Failed to delete region", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete region", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Region deleted successfully"})
}
