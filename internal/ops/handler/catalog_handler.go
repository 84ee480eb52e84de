package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	svc    *service.CatalogService
	logger *zap.Logger
}

func NewCatalogHandler(svc *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, logger: logger}
}

// Locations 启用中的门店/仓库，读失败降级为空列表
func (h *CatalogHandler) Locations(c *gin.Context) {
	locations, err := h.svc.ListLocations()
	if err != nil {
		h.logger.Error("Failed to fetch locations", zap.Error(err))
		c.JSON(http.StatusOK, []entity.Location{})
		return
	}
	c.JSON(http.StatusOK, locations)
}

// Materials 启用中的物料，读失败降级为空列表
func (h *CatalogHandler) Materials(c *gin.Context) {
	materials, err := h.svc.ListMaterials()
	if err != nil {
		h.logger.Error("Failed to fetch materials", zap.Error(err))
		c.JSON(http.StatusOK, []entity.RawMaterial{})
		return
	}
	c.JSON(http.StatusOK, materials)
}
