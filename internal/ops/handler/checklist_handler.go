package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"go.uber.org/zap"
)

type ChecklistHandler struct {
	svc    *service.ChecklistService
	logger *zap.Logger
}

func NewChecklistHandler(svc *service.ChecklistService, logger *zap.Logger) *ChecklistHandler {
	return &ChecklistHandler{svc: svc, logger: logger}
}

// Get 检查表详情。不存在或读失败都返回空结构，由前端展示空状态
func (h *ChecklistHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	detail, err := h.svc.GetChecklist(uint(id))
	if err != nil {
		h.logger.Error("Failed to fetch checklist", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"checklist": nil, "items": []interface{}{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checklist": detail.Checklist, "items": detail.Items})
}

// List 检查表列表，读失败降级为空列表
func (h *ChecklistHandler) List(c *gin.Context) {
	rows, err := h.svc.ListChecklists()
	if err != nil {
		h.logger.Error("Failed to fetch checklists", zap.Error(err))
		c.JSON(http.StatusOK, []repository.ChecklistRow{})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Complete 提交检查表完成记录
func (h *ChecklistHandler) Complete(c *gin.Context) {
	var req service.CompleteChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if err := h.svc.CompleteChecklist(req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save checklist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Checklist completed",
	})
}
