package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	svc    *service.DashboardService
	logger *zap.Logger
}

func NewDashboardHandler(svc *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, logger: logger}
}

// Summary 首页汇总，读失败降级为零值
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.svc.GetSummary(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build dashboard summary", zap.Error(err))
		c.JSON(http.StatusOK, service.DashboardSummary{
			StockByLocation: []repository.StockValueRow{},
		})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// LowStock 低库存告警列表
func (h *DashboardHandler) LowStock(c *gin.Context) {
	rows, err := h.svc.LowStockAlerts()
	if err != nil {
		h.logger.Error("Failed to fetch low stock alerts", zap.Error(err))
		c.JSON(http.StatusOK, []repository.LowStockRow{})
		return
	}
	c.JSON(http.StatusOK, rows)
}
