package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"gorm.io/gorm"
)

type ChecklistService struct {
	checklistRepo *repository.ChecklistRepository
	db            *gorm.DB
}

func NewChecklistService(cr *repository.ChecklistRepository, db *gorm.DB) *ChecklistService {
	return &ChecklistService{checklistRepo: cr, db: db}
}

// ChecklistDetail 检查表及其检查项
type ChecklistDetail struct {
	Checklist *entity.Checklist      `json:"checklist"`
	Items     []entity.ChecklistItem `json:"items"`
}

// GetChecklist 返回检查表和检查项。检查表不存在返回空结果，不视为错误
func (s *ChecklistService) GetChecklist(id uint) (*ChecklistDetail, error) {
	cl, err := s.checklistRepo.GetChecklist(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ChecklistDetail{Checklist: nil, Items: []entity.ChecklistItem{}}, nil
		}
		return nil, err
	}
	items, err := s.checklistRepo.ListItems(cl.ID)
	if err != nil {
		return nil, err
	}
	return &ChecklistDetail{Checklist: cl, Items: items}, nil
}

func (s *ChecklistService) ListChecklists() ([]repository.ChecklistRow, error) {
	return s.checklistRepo.List()
}

type ResponseInput struct {
	ItemID    uint `json:"itemId" binding:"required"`
	IsChecked bool `json:"isChecked"`
}

type CompleteChecklistRequest struct {
	ChecklistID uint            `json:"checklistId" binding:"required"`
	LocationID  uint            `json:"locationId"`
	CompletedBy string          `json:"completedBy" binding:"required"`
	Notes       string          `json:"notes"`
	Date        string          `json:"date"` // YYYY-MM-DD，缺省为当天
	Responses   []ResponseInput `json:"responses"`
}

// CompleteChecklist 提交完成记录。同日重复提交覆盖提交人/备注/时间；
// 单项结果先到先得，重复项忽略。必填项的校验留在前端，服务端不复查
func (s *ChecklistService) CompleteChecklist(req CompleteChecklistRequest) error {
	locationID := req.LocationID
	if locationID == 0 {
		locationID = 1
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		completion := &entity.ChecklistCompletion{
			ChecklistID:   req.ChecklistID,
			LocationID:    locationID,
			CompletedDate: BusinessDate(req.Date),
			CompletedBy:   req.CompletedBy,
			Notes:         req.Notes,
			CompletedAt:   time.Now(),
		}
		completionID, err := s.checklistRepo.UpsertCompletion(tx, completion)
		if err != nil {
			return fmt.Errorf("failed to save completion: %w", err)
		}

		for _, resp := range req.Responses {
			r := &entity.ChecklistResponse{
				CompletionID: completionID,
				ItemID:       resp.ItemID,
				IsChecked:    resp.IsChecked,
			}
			if err := s.checklistRepo.InsertResponse(tx, r); err != nil {
				return fmt.Errorf("failed to save response: %w", err)
			}
		}
		return nil
	})
}
