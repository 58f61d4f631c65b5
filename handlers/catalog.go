package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poojaconnect/services/catalog"
	"poojaconnect/utils"
)

// CatalogHandler exposes the public pooja and zone listings.
type CatalogHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: svc, Logger: logger}
}

// ListPoojasHandler lists all active poojas.
func (h *CatalogHandler) ListPoojasHandler(c *gin.Context) {
	poojas, err := h.Service.ListPoojas(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list poojas", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch poojas", "")
		return
	}
	c.JSON(http.StatusOK, poojas)
}

// GetPoojaBySlugHandler returns pooja details by slug.
func (h *CatalogHandler) GetPoojaBySlugHandler(c *gin.Context) {
	slug := c.Param("slug")
	pooja, err := h.Service.GetPoojaBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrPoojaNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Pooja not found", "")
			return
		}
		h.Logger.Error("Failed to fetch pooja", zap.String("slug", slug), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch pooja", "")
		return
	}
	c.JSON(http.StatusOK, pooja)
}

// ListZonesHandler lists all active zones.
func (h *CatalogHandler) ListZonesHandler(c *gin.Context) {
	zones, err := h.Service.ListZones(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list zones", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch zones", "")
		return
	}
	c.JSON(http.StatusOK, zones)
}
