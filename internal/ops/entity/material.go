package entity

import (
	"time"
)

// RawMaterial 原物料（SKU）
type RawMaterial struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:128;not null"`
	Category     string    `json:"category" gorm:"size:50;index"`
	Unit         string    `json:"unit" gorm:"size:20;not null;default:pcs"` // 基础单位
	PackingSize  string    `json:"packing_size" gorm:"size:50"`
	SupplierCode string    `json:"supplier_code" gorm:"size:50"`
	CostMYR      *float64  `json:"cost_myr" gorm:"type:decimal(10,2)"` // 无单价的物料不可采购
	ReorderLevel float64   `json:"reorder_level" gorm:"type:decimal(12,2);default:0"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Conversion *UnitConversion `json:"conversion,omitempty" gorm:"foreignKey:RawMaterialID"`
}

func (RawMaterial) TableName() string {
	return "ops_raw_materials"
}

// UnitConversion 物料包装层级（箱/排/件）
// units_per_carton 理应等于 units_per_pack * packs_per_carton，但不强制校验
type UnitConversion struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	RawMaterialID  uint   `json:"raw_material_id" gorm:"not null;uniqueIndex"`
	CartonName     string `json:"carton_name" gorm:"size:20;default:ctn"`
	PackName       string `json:"pack_name" gorm:"size:20;default:pack"`
	UnitsPerPack   int    `json:"units_per_pack" gorm:"default:1"`
	PacksPerCarton int    `json:"packs_per_carton" gorm:"default:1"`
	UnitsPerCarton int    `json:"units_per_carton" gorm:"default:1"`
}

func (UnitConversion) TableName() string {
	return "ops_unit_conversions"
}
