package entity

import (
	"time"
)

// ChecklistType 检查表类型
const (
	ChecklistTypeOpening = "opening"
	ChecklistTypeClosing = "closing"
	ChecklistTypeWeekly  = "weekly"
	ChecklistTypeMonthly = "monthly"
)

// Checklist 开店/闭店等例行检查表
type Checklist struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:100;not null"`
	ChecklistType string    `json:"checklist_type" gorm:"size:20;not null"`
	LocationType  string    `json:"location_type" gorm:"size:20"`
	IsActive      bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []ChecklistItem `json:"items,omitempty" gorm:"foreignKey:ChecklistID"`
}

func (Checklist) TableName() string {
	return "ops_checklists"
}

// ChecklistItem 检查项
type ChecklistItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ChecklistID uint   `json:"checklist_id" gorm:"not null;index"`
	ItemText    string `json:"item_text" gorm:"type:text;not null"`
	IsRequired  bool   `json:"is_required" gorm:"not null;default:false"`
	SortOrder   int    `json:"sort_order" gorm:"not null;default:0"`
}

func (ChecklistItem) TableName() string {
	return "ops_checklist_items"
}

// ChecklistCompletion 每日完成记录，(检查表, 门店, 日期) 唯一，重复提交覆盖
type ChecklistCompletion struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ChecklistID   uint      `json:"checklist_id" gorm:"not null;uniqueIndex:idx_completion_key"`
	LocationID    uint      `json:"location_id" gorm:"not null;uniqueIndex:idx_completion_key"`
	CompletedDate time.Time `json:"completed_date" gorm:"type:date;not null;uniqueIndex:idx_completion_key"`
	CompletedBy   string    `json:"completed_by" gorm:"size:64;not null"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CompletedAt   time.Time `json:"completed_at"`

	Responses []ChecklistResponse `json:"responses,omitempty" gorm:"foreignKey:CompletionID"`
}

func (ChecklistCompletion) TableName() string {
	return "ops_checklist_completions"
}

// ChecklistResponse 单项勾选结果，(完成记录, 检查项) 唯一，重复写入忽略
type ChecklistResponse struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	CompletionID uint `json:"completion_id" gorm:"not null;uniqueIndex:idx_response_key"`
	ItemID       uint `json:"item_id" gorm:"not null;uniqueIndex:idx_response_key"`
	IsChecked    bool `json:"is_checked" gorm:"not null;default:false"`
}

func (ChecklistResponse) TableName() string {
	return "ops_checklist_responses"
}
