package service

import (
	"fmt"
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"gorm.io/gorm"
)

type StockTakeService struct {
	stockTakeRepo *repository.StockTakeRepository
	catalogRepo   *repository.CatalogRepository
	auditRepo     *repository.AuditRepository
	db            *gorm.DB
}

func NewStockTakeService(str *repository.StockTakeRepository, cr *repository.CatalogRepository, ar *repository.AuditRepository, db *gorm.DB) *StockTakeService {
	return &StockTakeService{stockTakeRepo: str, catalogRepo: cr, auditRepo: ar, db: db}
}

type StockTakeItemInput struct {
	ID      uint `json:"id" binding:"required"`
	Cartons int  `json:"cartons"`
	Packs   int  `json:"packs"`
	Units   int  `json:"units"`
}

type RecordStockTakeRequest struct {
	LocationID uint                 `json:"locationId" binding:"required"`
	StaffName  string               `json:"staffName" binding:"required"`
	Date       string               `json:"date"` // YYYY-MM-DD，缺省为当天
	Items      []StockTakeItemInput `json:"items" binding:"required,min=1"`
}

// RecordStockTake 记录一批盘点。全部明细和审计记录在同一事务内写入，
// 任何一条失败则整批回滚
func (s *StockTakeService) RecordStockTake(req RecordStockTakeRequest) (int, error) {
	date := BusinessDate(req.Date)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			material, err := s.catalogRepo.GetMaterialWithConversion(tx, item.ID)
			if err != nil {
				return fmt.Errorf("material %d not found: %w", item.ID, err)
			}

			count := PackCount{Cartons: item.Cartons, Packs: item.Packs, Units: item.Units}
			total := TotalUnits(FactorsFor(material.Conversion), count)

			st := &entity.StockTake{
				LocationID:    req.LocationID,
				RawMaterialID: item.ID,
				StockTakeDate: date,
				CartonQty:     count.Cartons,
				PackQty:       count.Packs,
				UnitQty:       count.Units,
				ActualQty:     float64(total),
				CreatedBy:     req.StaffName,
				CreatedAt:     time.Now(),
			}
			if err := s.stockTakeRepo.Upsert(tx, st); err != nil {
				return fmt.Errorf("failed to save stock take: %w", err)
			}
		}

		payload := map[string]interface{}{
			"locationId": req.LocationID,
			"itemCount":  len(req.Items),
		}
		return s.auditRepo.Append(tx, "ops_stock_takes", "INSERT", payload, req.StaffName)
	})
	if err != nil {
		return 0, err
	}
	return len(req.Items), nil
}

// ListStockTakes 查询盘点记录，date 缺省为当天
func (s *StockTakeService) ListStockTakes(locationID uint, date string) ([]repository.StockTakeRow, error) {
	return s.stockTakeRepo.List(locationID, BusinessDate(date))
}

func (s *StockTakeService) RecentStockTakes() ([]repository.RecentRow, error) {
	return s.stockTakeRepo.Recent(7, 5)
}

// BusinessDate 解析业务日期，无效或缺省时取当天。日期在边界处确定，
// 不依赖数据库的 CURRENT_DATE
func BusinessDate(raw string) time.Time {
	if raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return t
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
