package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"go.uber.org/zap"
)

type ProcurementHandler struct {
	svc    *service.ProcurementService
	logger *zap.Logger
}

func NewProcurementHandler(svc *service.ProcurementService, logger *zap.Logger) *ProcurementHandler {
	return &ProcurementHandler{svc: svc, logger: logger}
}

// Create 创建采购订单
func (h *ProcurementHandler) Create(c *gin.Context) {
	var req service.CreatePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	po, err := h.svc.CreatePO(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create PO"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"poNumber": po.PONumber,
		"message":  "Purchase order created",
	})
}

func (h *ProcurementHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	po, err := h.svc.GetPO(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Purchase order not found"})
		return
	}
	c.JSON(http.StatusOK, po)
}

// List 近期采购订单，读失败降级为空列表
func (h *ProcurementHandler) List(c *gin.Context) {
	rows, err := h.svc.ListPOs()
	if err != nil {
		h.logger.Error("Failed to fetch purchase orders", zap.Error(err))
		c.JSON(http.StatusOK, []repository.PORow{})
		return
	}
	c.JSON(http.StatusOK, rows)
}
