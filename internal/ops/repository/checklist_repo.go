package repository

import (
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) GetChecklist(id uint) (*entity.Checklist, error) {
	var cl entity.Checklist
	err := r.db.First(&cl, id).Error
	return &cl, err
}

// ListItems 检查项按 (sort_order, id) 排序
func (r *ChecklistRepository) ListItems(checklistID uint) ([]entity.ChecklistItem, error) {
	var items []entity.ChecklistItem
	err := r.db.Where("checklist_id = ?", checklistID).
		Order("sort_order, id").
		Find(&items).Error
	return items, err
}

// ChecklistRow 检查表列表行，带今日完成时间
type ChecklistRow struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	ChecklistType  string     `json:"checklist_type"`
	LocationType   string     `json:"location_type"`
	ItemCount      int64      `json:"item_count"`
	CompletedToday *time.Time `json:"completed_today"`
}

// List 启用中的检查表，按 开店/闭店/周检/月检 排序
func (r *ChecklistRepository) List() ([]ChecklistRow, error) {
	var rows []ChecklistRow
	err := r.db.Raw(`
		SELECT c.id, c.name, c.checklist_type, c.location_type,
			COUNT(ci.id) AS item_count,
			(
				SELECT completed_at FROM ops_checklist_completions cc
				WHERE cc.checklist_id = c.id AND cc.completed_date = CURRENT_DATE
				LIMIT 1
			) AS completed_today
		FROM ops_checklists c
		LEFT JOIN ops_checklist_items ci ON c.id = ci.checklist_id
		WHERE c.is_active = true
		GROUP BY c.id, c.name, c.checklist_type, c.location_type
		ORDER BY
			CASE c.checklist_type
				WHEN 'opening' THEN 1
				WHEN 'closing' THEN 2
				WHEN 'weekly' THEN 3
				ELSE 4
			END
	`).Scan(&rows).Error
	return rows, err
}

// UpsertCompletion 按 (检查表, 门店, 日期) 写入完成记录，冲突时覆盖
// 提交人/备注/时间，返回完成记录ID
func (r *ChecklistRepository) UpsertCompletion(tx *gorm.DB, c *entity.ChecklistCompletion) (uint, error) {
	var id uint
	err := tx.Raw(`
		INSERT INTO ops_checklist_completions (checklist_id, location_id, completed_date, completed_by, notes, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (checklist_id, location_id, completed_date)
		DO UPDATE SET completed_by = EXCLUDED.completed_by, notes = EXCLUDED.notes, completed_at = EXCLUDED.completed_at
		RETURNING id
	`, c.ChecklistID, c.LocationID, c.CompletedDate.Format("2006-01-02"), c.CompletedBy, c.Notes, c.CompletedAt).Scan(&id).Error
	return id, err
}

// InsertResponse 写入单项结果，同一 (完成记录, 检查项) 已存在时忽略（先到先得）
func (r *ChecklistRepository) InsertResponse(tx *gorm.DB, resp *entity.ChecklistResponse) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(resp).Error
}
