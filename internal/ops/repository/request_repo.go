package repository

import (
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create 创建调拨申请，明细随主表一并写入
func (r *RequestRepository) Create(tx *gorm.DB, req *entity.StockRequest) error {
	return tx.Create(req).Error
}

// RequestRow 调拨申请列表行
type RequestRow struct {
	ID            uint      `json:"id"`
	RequestNumber string    `json:"request_number"`
	FromLocation  string    `json:"from_location"`
	ToLocation    string    `json:"to_location"`
	Status        string    `json:"status"`
	RequestedBy   string    `json:"requested_by"`
	RequestedAt   time.Time `json:"requested_at"`
	ItemCount     int64     `json:"item_count"`
}

// List 调拨申请列表，带双端门店名称和明细行数
func (r *RequestRepository) List() ([]RequestRow, error) {
	var rows []RequestRow
	err := r.db.Raw(`
		SELECT sr.id, sr.request_number, fl.name AS from_location, tl.name AS to_location,
			sr.status, sr.requested_by, sr.requested_at, COUNT(sri.id) AS item_count
		FROM ops_stock_requests sr
		JOIN ops_locations fl ON sr.from_location_id = fl.id
		JOIN ops_locations tl ON sr.to_location_id = tl.id
		LEFT JOIN ops_stock_request_items sri ON sr.id = sri.request_id
		GROUP BY sr.id, sr.request_number, fl.name, tl.name, sr.status, sr.requested_by, sr.requested_at
		ORDER BY sr.requested_at DESC
	`).Scan(&rows).Error
	return rows, err
}
