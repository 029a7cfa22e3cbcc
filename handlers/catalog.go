package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the service-listing endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler returns a CatalogHandler.
func NewCatalogHandler(service catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

// CreateService handles POST /api/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var input catalog.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc, err := h.Service.CreateService(c.Request.Context(), principal, input)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// UpdateService handles PUT /api/services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var input catalog.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc, err := h.Service.UpdateService(c.Request.Context(), principal, c.Param("id"), input)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DeactivateService handles DELETE /api/services/:id.
func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	if err := h.Service.DeactivateService(c.Request.Context(), principal, c.Param("id")); err != nil {
		h.respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deactivated"})
}

// MyServices handles GET /api/services/mine.
func (h *CatalogHandler) MyServices(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	services, err := h.Service.ListProviderServices(c.Request.Context(), principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// BrowseServices handles GET /api/services. Category filter via ?category=.
func (h *CatalogHandler) BrowseServices(c *gin.Context) {
	services, err := h.Service.BrowseServices(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) respondCatalogError(c *gin.Context, err error) {
	logger := zap.L()
	switch err {
	case catalog.ErrNotOwner:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Warn("catalog operation failed", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	}
}
