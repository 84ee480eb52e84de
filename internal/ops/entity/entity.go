package entity

import "gorm.io/gorm"

// AutoMigrate 自动迁移所有运营表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// 基础数据
		&Location{},
		&RawMaterial{},
		&UnitConversion{},

		// 库存
		&StockMovement{},
		&Batch{},
		&StockTake{},

		// 调拨
		&StockRequest{},
		&StockRequestItem{},

		// 采购
		&PurchaseOrder{},
		&POItem{},

		// 检查表
		&Checklist{},
		&ChecklistItem{},
		&ChecklistCompletion{},
		&ChecklistResponse{},

		// 审计与单号
		&AuditLog{},
		&RefSequence{},
	)
}
