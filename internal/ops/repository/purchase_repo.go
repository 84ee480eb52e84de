package repository

import (
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create 创建采购订单，明细随主表一并写入
func (r *PurchaseRepository) Create(tx *gorm.DB, po *entity.PurchaseOrder) error {
	return tx.Create(po).Error
}

func (r *PurchaseRepository) GetByID(id uint) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.Preload("Items").Preload("Items.RawMaterial").First(&po, id).Error
	return &po, err
}

// PORow 采购订单列表行
type PORow struct {
	ID          uint      `json:"id"`
	PONumber    string    `json:"po_number"`
	PODate      time.Time `json:"po_date"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int64     `json:"item_count"`
}

func (r *PurchaseRepository) List(limit int) ([]PORow, error) {
	var rows []PORow
	err := r.db.Raw(`
		SELECT po.id, po.po_number, po.po_date, po.status, po.total_amount,
			COUNT(pi.id) AS item_count
		FROM ops_purchase_orders po
		LEFT JOIN ops_po_items pi ON po.id = pi.po_id
		GROUP BY po.id
		ORDER BY po.po_date DESC, po.id DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	return rows, err
}
