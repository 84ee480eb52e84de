package entity

import (
	"time"
)

// PurchaseOrderStatus 采购订单状态
const (
	POStatusDraft     = "draft"
	POStatusSubmitted = "submitted"
	POStatusConfirmed = "confirmed"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder 采购订单
// total_amount 为创建时一次性计算的快照，之后不会根据明细重新推导
type PurchaseOrder struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PONumber    string    `json:"po_number" gorm:"size:50;not null;uniqueIndex"`
	PODate      time.Time `json:"po_date" gorm:"type:date;not null"`
	Status      string    `json:"status" gorm:"size:20;not null;default:draft"`
	TotalAmount float64   `json:"total_amount" gorm:"type:decimal(12,2);not null;default:0"`
	Notes       string    `json:"notes" gorm:"type:text"`
	CreatedBy   string    `json:"created_by" gorm:"size:64;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Items []POItem `json:"items,omitempty" gorm:"foreignKey:POID"`
}

func (PurchaseOrder) TableName() string {
	return "ops_purchase_orders"
}

// POItem 采购订单明细
type POItem struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	POID          uint    `json:"po_id" gorm:"not null;index"`
	RawMaterialID uint    `json:"raw_material_id" gorm:"not null"`
	Quantity      float64 `json:"quantity" gorm:"type:decimal(12,2);not null"`
	UnitPrice     float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice    float64 `json:"total_price" gorm:"type:decimal(12,2);not null"`

	RawMaterial *RawMaterial `json:"raw_material,omitempty" gorm:"foreignKey:RawMaterialID"`
}

func (POItem) TableName() string {
	return "ops_po_items"
}
