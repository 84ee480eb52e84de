package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog 操作审计
type AuditLog struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Table     string         `json:"table_name" gorm:"column:table_name;size:64;not null;index"`
	Action    string         `json:"action" gorm:"size:20;not null"`
	NewValues datatypes.JSON `json:"new_values" gorm:"type:jsonb"`
	ChangedBy string         `json:"changed_by" gorm:"size:64;not null"`
	ChangedAt time.Time      `json:"changed_at" gorm:"autoCreateTime"`
}

func (AuditLog) TableName() string {
	return "ops_audit_log"
}

// RefSequence 业务单号序列，按前缀独立计数
type RefSequence struct {
	Prefix string `json:"prefix" gorm:"primaryKey;size:10"`
	Value  int64  `json:"value" gorm:"not null;default:0"`
}

func (RefSequence) TableName() string {
	return "ops_ref_sequences"
}
