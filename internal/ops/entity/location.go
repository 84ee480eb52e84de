package entity

import (
	"time"
)

// LocationType 门店/仓库类型
const (
	LocationTypeWarehouse = "warehouse"
	LocationTypeOutlet    = "outlet"
)

// Location 仓库或门店
type Location struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Type      string    `json:"type" gorm:"size:20;not null;default:outlet"`
	Region    string    `json:"region" gorm:"size:50"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Location) TableName() string {
	return "ops_locations"
}
