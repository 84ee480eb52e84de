package service

import (
	"fmt"
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"gorm.io/gorm"
)

type GRNService struct {
	movementRepo *repository.MovementRepository
	refRepo      *repository.RefRepository
	db           *gorm.DB
}

func NewGRNService(mr *repository.MovementRepository, rr *repository.RefRepository, db *gorm.DB) *GRNService {
	return &GRNService{movementRepo: mr, refRepo: rr, db: db}
}

type GRNItemInput struct {
	MaterialID uint    `json:"materialId" binding:"required"`
	Qty        float64 `json:"qty" binding:"required,gt=0"`
	ExpiryDate string  `json:"expiryDate"` // YYYY-MM-DD，可选
}

type ReceiveGoodsRequest struct {
	LocationID  uint           `json:"locationId" binding:"required"`
	ReferenceNo string         `json:"referenceNo"`
	CreatedBy   string         `json:"createdBy" binding:"required"`
	Items       []GRNItemInput `json:"items" binding:"required,min=1"`
}

// ReceiveGoods 收货：每行追加一条流水，带效期的行另开批次。
// 批次号取自 B 前缀序列，事务内生成，并发收货不会撞号
func (s *GRNService) ReceiveGoods(req ReceiveGoodsRequest) (int, error) {
	var refNo *string
	if req.ReferenceNo != "" {
		refNo = &req.ReferenceNo
	}
	today := BusinessDate("")

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			mv := &entity.StockMovement{
				MovementType:  entity.MovementTypeGRN,
				RawMaterialID: item.MaterialID,
				ToLocationID:  &req.LocationID,
				Quantity:      item.Qty,
				ReferenceNo:   refNo,
				MovementDate:  today,
				CreatedBy:     req.CreatedBy,
			}
			if err := s.movementRepo.AppendMovement(tx, mv); err != nil {
				return fmt.Errorf("failed to record movement: %w", err)
			}

			if item.ExpiryDate == "" {
				continue
			}
			expiry, err := time.Parse("2006-01-02", item.ExpiryDate)
			if err != nil {
				return fmt.Errorf("invalid expiry date %q: %w", item.ExpiryDate, err)
			}

			batchNumber, err := s.refRepo.Next(tx, "B")
			if err != nil {
				return err
			}
			batch := &entity.Batch{
				BatchNumber:       batchNumber,
				RawMaterialID:     item.MaterialID,
				LocationID:        req.LocationID,
				ExpiryDate:        expiry,
				QuantityReceived:  item.Qty,
				QuantityRemaining: item.Qty,
				POReference:       refNo,
			}
			if err := s.movementRepo.CreateBatch(tx, batch); err != nil {
				return fmt.Errorf("failed to create batch: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(req.Items), nil
}

func (s *GRNService) RecentGRNs() ([]repository.GRNRow, error) {
	return s.movementRepo.RecentGRNs(10)
}

// ExpiringBatches 30 天内到期且仍有余量的批次
func (s *GRNService) ExpiringBatches() ([]repository.ExpiringRow, error) {
	return s.movementRepo.ExpiringBatches(30)
}
