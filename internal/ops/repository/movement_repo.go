package repository

import (
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"gorm.io/gorm"
)

type MovementRepository struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

// AppendMovement 追加库存流水，流水不允许更新或删除
func (r *MovementRepository) AppendMovement(tx *gorm.DB, mv *entity.StockMovement) error {
	return tx.Create(mv).Error
}

func (r *MovementRepository) CreateBatch(tx *gorm.DB, b *entity.Batch) error {
	return tx.Create(b).Error
}

// GRNRow 近期收货汇总
type GRNRow struct {
	ReferenceNo  *string   `json:"reference_no"`
	MovementDate time.Time `json:"movement_date"`
	LocationName string    `json:"location_name"`
	ItemCount    int64     `json:"item_count"`
	CreatedBy    string    `json:"created_by"`
}

// RecentGRNs 按参考号汇总最近的收货记录
func (r *MovementRepository) RecentGRNs(limit int) ([]GRNRow, error) {
	var rows []GRNRow
	err := r.db.Raw(`
		SELECT sm.reference_no, sm.movement_date, l.name AS location_name,
			COUNT(*) AS item_count, sm.created_by
		FROM ops_stock_movements sm
		JOIN ops_locations l ON sm.to_location_id = l.id
		WHERE sm.movement_type = 'grn'
		GROUP BY sm.reference_no, sm.movement_date, l.name, sm.created_by
		ORDER BY sm.movement_date DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	return rows, err
}

// ExpiringRow 临期批次
type ExpiringRow struct {
	ID                uint      `json:"id"`
	RawMaterialName   string    `json:"raw_material_name"`
	LocationName      string    `json:"location_name"`
	BatchNumber       string    `json:"batch_number"`
	ExpiryDate        time.Time `json:"expiry_date"`
	QuantityRemaining float64   `json:"quantity_remaining"`
	DaysUntilExpiry   int       `json:"days_until_expiry"`
}

// ExpiringBatches 查询 N 天内到期、仍有余量的批次
func (r *MovementRepository) ExpiringBatches(days int) ([]ExpiringRow, error) {
	var rows []ExpiringRow
	err := r.db.Raw(`
		SELECT b.id, rm.name AS raw_material_name, l.name AS location_name,
			b.batch_number, b.expiry_date, b.quantity_remaining,
			b.expiry_date - CURRENT_DATE AS days_until_expiry
		FROM ops_batches b
		JOIN ops_raw_materials rm ON b.raw_material_id = rm.id
		JOIN ops_locations l ON b.location_id = l.id
		WHERE b.quantity_remaining > 0
			AND b.expiry_date <= CURRENT_DATE + ? * INTERVAL '1 day'
		ORDER BY b.expiry_date
	`, days).Scan(&rows).Error
	return rows, err
}
