package entity

import (
	"time"
)

// MovementType 库存流水类型
const (
	MovementTypeGRN      = "grn"
	MovementTypeTransfer = "transfer"
	MovementTypeAdjust   = "adjustment"
)

// StockMovement 库存流水，只增不改
type StockMovement struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	MovementType   string    `json:"movement_type" gorm:"size:20;not null;index"`
	RawMaterialID  uint      `json:"raw_material_id" gorm:"not null;index"`
	FromLocationID *uint     `json:"from_location_id" gorm:"index"`
	ToLocationID   *uint     `json:"to_location_id" gorm:"index"`
	Quantity       float64   `json:"quantity" gorm:"type:decimal(12,2);not null"`
	ReferenceNo    *string   `json:"reference_no" gorm:"size:50;index"`
	MovementDate   time.Time `json:"movement_date" gorm:"type:date;not null"`
	CreatedBy      string    `json:"created_by" gorm:"size:64;not null"`
	CreatedAt      time.Time `json:"created_at"`

	RawMaterial *RawMaterial `json:"raw_material,omitempty" gorm:"foreignKey:RawMaterialID"`
	ToLocation  *Location    `json:"to_location,omitempty" gorm:"foreignKey:ToLocationID"`
}

func (StockMovement) TableName() string {
	return "ops_stock_movements"
}

// Batch 收货批次，按效期单独追踪
type Batch struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	BatchNumber       string    `json:"batch_number" gorm:"size:50;not null;uniqueIndex"`
	RawMaterialID     uint      `json:"raw_material_id" gorm:"not null;index"`
	LocationID        uint      `json:"location_id" gorm:"not null;index"`
	ExpiryDate        time.Time `json:"expiry_date" gorm:"type:date;not null;index"`
	QuantityReceived  float64   `json:"quantity_received" gorm:"type:decimal(12,2);not null"`
	QuantityRemaining float64   `json:"quantity_remaining" gorm:"type:decimal(12,2);not null"`
	POReference       *string   `json:"po_reference" gorm:"size:50"`
	CreatedAt         time.Time `json:"created_at"`

	RawMaterial *RawMaterial `json:"raw_material,omitempty" gorm:"foreignKey:RawMaterialID"`
	Location    *Location    `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

func (Batch) TableName() string {
	return "ops_batches"
}

// StockTake 盘点记录，(门店, 物料, 日期) 唯一，重复提交覆盖
type StockTake struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	LocationID    uint      `json:"location_id" gorm:"not null;uniqueIndex:idx_stock_take_key"`
	RawMaterialID uint      `json:"raw_material_id" gorm:"not null;uniqueIndex:idx_stock_take_key"`
	StockTakeDate time.Time `json:"stock_take_date" gorm:"type:date;not null;uniqueIndex:idx_stock_take_key"`
	CartonQty     int       `json:"carton_qty" gorm:"not null;default:0"`
	PackQty       int       `json:"pack_qty" gorm:"not null;default:0"`
	UnitQty       int       `json:"unit_qty" gorm:"not null;default:0"`
	ActualQty     float64   `json:"actual_qty" gorm:"type:decimal(12,2);not null"`
	CreatedBy     string    `json:"created_by" gorm:"size:64;not null"`
	CreatedAt     time.Time `json:"created_at"`

	RawMaterial *RawMaterial `json:"raw_material,omitempty" gorm:"foreignKey:RawMaterialID"`
	Location    *Location    `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

func (StockTake) TableName() string {
	return "ops_stock_takes"
}
