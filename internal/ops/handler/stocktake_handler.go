package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
)

type StockTakeHandler struct {
	svc *service.StockTakeService
}

func NewStockTakeHandler(svc *service.StockTakeService) *StockTakeHandler {
	return &StockTakeHandler{svc: svc}
}

// Record 提交一批盘点
func (h *StockTakeHandler) Record(c *gin.Context) {
	var req service.RecordStockTakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	saved, err := h.svc.RecordStockTake(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save stock take"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Stock take saved: %d items", saved),
	})
}

// List 查询盘点记录，支持 locationId/date 过滤
func (h *StockTakeHandler) List(c *gin.Context) {
	locationID, _ := strconv.ParseUint(c.Query("locationId"), 10, 32)
	rows, err := h.svc.ListStockTakes(uint(locationID), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stock takes"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Recent 近7天盘点汇总
func (h *StockTakeHandler) Recent(c *gin.Context) {
	rows, err := h.svc.RecentStockTakes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stock takes"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
