package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"go.uber.org/zap"
)

type TransferHandler struct {
	svc    *service.TransferService
	logger *zap.Logger
}

func NewTransferHandler(svc *service.TransferService, logger *zap.Logger) *TransferHandler {
	return &TransferHandler{svc: svc, logger: logger}
}

// Create 创建调拨申请
func (h *TransferHandler) Create(c *gin.Context) {
	var req service.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	requestNumber, err := h.svc.CreateTransfer(req)
	if err != nil {
		if errors.Is(err, service.ErrSameLocation) || errors.Is(err, service.ErrLocationNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create transfer request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"requestNumber": requestNumber,
		"message":       "Transfer request created",
	})
}

// List 调拨申请列表，读失败降级为空列表
func (h *TransferHandler) List(c *gin.Context) {
	rows, err := h.svc.ListTransfers()
	if err != nil {
		h.logger.Error("Failed to fetch transfers", zap.Error(err))
		c.JSON(http.StatusOK, []repository.RequestRow{})
		return
	}
	c.JSON(http.StatusOK, rows)
}
