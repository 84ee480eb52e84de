package repository

import (
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// LowStockRow 低库存告警行：以各门店最近一次盘点为当前库存
type LowStockRow struct {
	RawMaterialID uint    `json:"raw_material_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	LocationName  string  `json:"location_name"`
	CurrentQty    float64 `json:"current_qty"`
	ReorderLevel  float64 `json:"reorder_level"`
	Unit          string  `json:"unit"`
}

func (r *DashboardRepository) LowStock() ([]LowStockRow, error) {
	var rows []LowStockRow
	err := r.db.Raw(`
		SELECT st.raw_material_id, rm.name, rm.category, l.name AS location_name,
			st.actual_qty AS current_qty, rm.reorder_level, rm.unit
		FROM ops_stock_takes st
		JOIN ops_raw_materials rm ON st.raw_material_id = rm.id
		JOIN ops_locations l ON st.location_id = l.id
		WHERE rm.reorder_level > 0
			AND st.actual_qty <= rm.reorder_level
			AND st.stock_take_date = (
				SELECT MAX(s2.stock_take_date) FROM ops_stock_takes s2
				WHERE s2.location_id = st.location_id AND s2.raw_material_id = st.raw_material_id
			)
		ORDER BY rm.category, rm.name
	`).Scan(&rows).Error
	return rows, err
}

func (r *DashboardRepository) LowStockCount() (int64, error) {
	var result struct{ Count int64 }
	err := r.db.Raw(`
		SELECT COUNT(*) AS count FROM (
			SELECT st.id
			FROM ops_stock_takes st
			JOIN ops_raw_materials rm ON st.raw_material_id = rm.id
			WHERE rm.reorder_level > 0
				AND st.actual_qty <= rm.reorder_level
				AND st.stock_take_date = (
					SELECT MAX(s2.stock_take_date) FROM ops_stock_takes s2
					WHERE s2.location_id = st.location_id AND s2.raw_material_id = st.raw_material_id
				)
		) alerts
	`).Scan(&result).Error
	return result.Count, err
}

func (r *DashboardRepository) ExpiringCount(days int) (int64, error) {
	var result struct{ Count int64 }
	err := r.db.Raw(`
		SELECT COUNT(*) AS count FROM ops_batches
		WHERE quantity_remaining > 0
			AND expiry_date <= CURRENT_DATE + ? * INTERVAL '1 day'
	`, days).Scan(&result).Error
	return result.Count, err
}

func (r *DashboardRepository) OpenRequestCount() (int64, error) {
	var count int64
	err := r.db.Table("ops_stock_requests").
		Where("status IN ?", []string{"pending", "approved", "in_transit"}).
		Count(&count).Error
	return count, err
}

// PendingChecklistCount 今日尚未完成的启用检查表数量
func (r *DashboardRepository) PendingChecklistCount() (int64, error) {
	var result struct{ Count int64 }
	err := r.db.Raw(`
		SELECT COUNT(*) AS count FROM ops_checklists c
		WHERE c.is_active = true
			AND NOT EXISTS (
				SELECT 1 FROM ops_checklist_completions cc
				WHERE cc.checklist_id = c.id AND cc.completed_date = CURRENT_DATE
			)
	`).Scan(&result).Error
	return result.Count, err
}

// StockValueRow 门店库存货值（当日盘点数量 × 物料单价）
type StockValueRow struct {
	LocationName string  `json:"location_name"`
	Value        float64 `json:"value"`
}

func (r *DashboardRepository) StockValueByLocation() ([]StockValueRow, error) {
	var rows []StockValueRow
	err := r.db.Raw(`
		SELECT l.name AS location_name, COALESCE(SUM(st.actual_qty * rm.cost_myr), 0) AS value
		FROM ops_stock_takes st
		JOIN ops_raw_materials rm ON st.raw_material_id = rm.id
		JOIN ops_locations l ON st.location_id = l.id
		WHERE st.stock_take_date = CURRENT_DATE AND rm.cost_myr IS NOT NULL
		GROUP BY l.id, l.name
		ORDER BY l.name
	`).Scan(&rows).Error
	return rows, err
}
