package repository

import (
	"encoding/json"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append 追加一条审计记录，payload 序列化为 jsonb
func (r *AuditRepository) Append(tx *gorm.DB, table, action string, payload interface{}, changedBy string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	log := &entity.AuditLog{
		Table:     table,
		Action:    action,
		NewValues: datatypes.JSON(raw),
		ChangedBy: changedBy,
	}
	return tx.Create(log).Error
}
