package repository

import (
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockTakeRepository struct {
	db *gorm.DB
}

func NewStockTakeRepository(db *gorm.DB) *StockTakeRepository {
	return &StockTakeRepository{db: db}
}

// Upsert 按 (门店, 物料, 日期) 写入盘点，冲突时覆盖数量和盘点人
func (r *StockTakeRepository) Upsert(tx *gorm.DB, st *entity.StockTake) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "location_id"},
			{Name: "raw_material_id"},
			{Name: "stock_take_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"carton_qty", "pack_qty", "unit_qty", "actual_qty", "created_by", "created_at",
		}),
	}).Create(st).Error
}

// StockTakeRow 盘点查询行，带物料名称和分类
type StockTakeRow struct {
	ID              uint      `json:"id"`
	RawMaterialID   uint      `json:"raw_material_id"`
	RawMaterialName string    `json:"raw_material_name"`
	Category        string    `json:"category"`
	CartonQty       int       `json:"carton_qty"`
	PackQty         int       `json:"pack_qty"`
	UnitQty         int       `json:"unit_qty"`
	ActualQty       float64   `json:"actual_qty"`
	StockTakeDate   time.Time `json:"stock_take_date"`
	CreatedBy       string    `json:"created_by"`
}

// List 查询某天的盘点记录，可选按门店过滤
func (r *StockTakeRepository) List(locationID uint, date time.Time) ([]StockTakeRow, error) {
	query := r.db.Table("ops_stock_takes st").
		Select(`st.id, st.raw_material_id, rm.name AS raw_material_name, rm.category,
			st.carton_qty, st.pack_qty, st.unit_qty, st.actual_qty, st.stock_take_date, st.created_by`).
		Joins("JOIN ops_raw_materials rm ON st.raw_material_id = rm.id").
		Where("st.stock_take_date = ?", date.Format("2006-01-02"))
	if locationID != 0 {
		query = query.Where("st.location_id = ?", locationID)
	}
	var rows []StockTakeRow
	err := query.Order("rm.category, rm.name").Scan(&rows).Error
	return rows, err
}

// RecentRow 近期盘点汇总（按门店+日期）
type RecentRow struct {
	LocationName  string    `json:"location_name"`
	StockTakeDate time.Time `json:"stock_take_date"`
	ItemCount     int64     `json:"item_count"`
	CreatedBy     string    `json:"created_by"`
}

func (r *StockTakeRepository) Recent(days, limit int) ([]RecentRow, error) {
	var rows []RecentRow
	err := r.db.Raw(`
		SELECT l.name AS location_name, st.stock_take_date, COUNT(*) AS item_count, st.created_by
		FROM ops_stock_takes st
		JOIN ops_locations l ON st.location_id = l.id
		WHERE st.stock_take_date >= CURRENT_DATE - ? * INTERVAL '1 day'
		GROUP BY l.name, st.stock_take_date, st.created_by
		ORDER BY st.stock_take_date DESC
		LIMIT ?
	`, days, limit).Scan(&rows).Error
	return rows, err
}
