package entity

import (
	"time"
)

// StockRequestStatus 调拨申请状态
const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusInTransit = "in_transit"
	RequestStatusReceived  = "received"
	RequestStatusCancelled = "cancelled"
)

// ValidRequestTransitions 调拨状态流转表。创建后停留在 pending，
// 后续流转由消费方（审批端）执行，本服务只声明数据契约。
var ValidRequestTransitions = map[string][]string{
	RequestStatusPending:   {RequestStatusApproved, RequestStatusCancelled},
	RequestStatusApproved:  {RequestStatusInTransit, RequestStatusCancelled},
	RequestStatusInTransit: {RequestStatusReceived, RequestStatusCancelled},
	RequestStatusReceived:  {},
	RequestStatusCancelled: {},
}

// StockRequest 仓库→门店调拨申请
type StockRequest struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	RequestNumber  string    `json:"request_number" gorm:"size:50;not null;uniqueIndex"`
	FromLocationID uint      `json:"from_location_id" gorm:"not null;index"`
	ToLocationID   uint      `json:"to_location_id" gorm:"not null;index"`
	RequestedBy    string    `json:"requested_by" gorm:"size:64;not null"`
	Status         string    `json:"status" gorm:"size:20;not null;default:pending"`
	RequestedAt    time.Time `json:"requested_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at"`

	FromLocation *Location          `json:"from_location,omitempty" gorm:"foreignKey:FromLocationID"`
	ToLocation   *Location          `json:"to_location,omitempty" gorm:"foreignKey:ToLocationID"`
	Items        []StockRequestItem `json:"items,omitempty" gorm:"foreignKey:RequestID"`
}

func (StockRequest) TableName() string {
	return "ops_stock_requests"
}

// StockRequestItem 调拨申请明细
type StockRequestItem struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	RequestID         uint    `json:"request_id" gorm:"not null;index"`
	RawMaterialID     uint    `json:"raw_material_id" gorm:"not null"`
	QuantityRequested float64 `json:"quantity_requested" gorm:"type:decimal(12,2);not null"`

	RawMaterial *RawMaterial `json:"raw_material,omitempty" gorm:"foreignKey:RawMaterialID"`
}

func (StockRequestItem) TableName() string {
	return "ops_stock_request_items"
}
