package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"go.uber.org/zap"
)

type GRNHandler struct {
	svc    *service.GRNService
	logger *zap.Logger
}

func NewGRNHandler(svc *service.GRNService, logger *zap.Logger) *GRNHandler {
	return &GRNHandler{svc: svc, logger: logger}
}

// Receive 收货入库
func (h *GRNHandler) Receive(c *gin.Context) {
	var req service.ReceiveGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	received, err := h.svc.ReceiveGoods(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save GRN"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d items received", received),
	})
}

// Recent 近期收货记录，读失败降级为空列表
func (h *GRNHandler) Recent(c *gin.Context) {
	rows, err := h.svc.RecentGRNs()
	if err != nil {
		h.logger.Error("Failed to fetch recent GRNs", zap.Error(err))
		c.JSON(http.StatusOK, []repository.GRNRow{})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Expiring 临期批次告警
func (h *GRNHandler) Expiring(c *gin.Context) {
	rows, err := h.svc.ExpiringBatches()
	if err != nil {
		h.logger.Error("Failed to fetch expiring batches", zap.Error(err))
		c.JSON(http.StatusOK, []repository.ExpiringRow{})
		return
	}
	c.JSON(http.StatusOK, rows)
}
