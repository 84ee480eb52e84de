package service

import (
	"fmt"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"gorm.io/gorm"
)

type ProcurementService struct {
	purchaseRepo *repository.PurchaseRepository
	refRepo      *repository.RefRepository
	db           *gorm.DB
}

func NewProcurementService(pr *repository.PurchaseRepository, rr *repository.RefRepository, db *gorm.DB) *ProcurementService {
	return &ProcurementService{purchaseRepo: pr, refRepo: rr, db: db}
}

type CreatePOItem struct {
	MaterialID uint    `json:"materialId" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice  float64 `json:"unitPrice" binding:"required,gt=0"`
}

type CreatePORequest struct {
	CreatedBy string         `json:"createdBy" binding:"required"`
	Notes     string         `json:"notes"`
	Items     []CreatePOItem `json:"items" binding:"required,min=1"`
}

// CreatePO 创建采购订单。total_amount 为创建时的快照，
// 主表和明细在同一事务内写入
func (s *ProcurementService) CreatePO(req CreatePORequest) (*entity.PurchaseOrder, error) {
	var po *entity.PurchaseOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		poNumber, err := s.refRepo.Next(tx, "PO")
		if err != nil {
			return err
		}

		var totalAmount float64
		items := make([]entity.POItem, 0, len(req.Items))
		for _, item := range req.Items {
			totalPrice := item.UnitPrice * item.Quantity
			totalAmount += totalPrice
			items = append(items, entity.POItem{
				RawMaterialID: item.MaterialID,
				Quantity:      item.Quantity,
				UnitPrice:     item.UnitPrice,
				TotalPrice:    totalPrice,
			})
		}

		po = &entity.PurchaseOrder{
			PONumber:    poNumber,
			PODate:      BusinessDate(""),
			Status:      entity.POStatusDraft,
			TotalAmount: totalAmount,
			Notes:       req.Notes,
			CreatedBy:   req.CreatedBy,
			Items:       items,
		}
		if err := s.purchaseRepo.Create(tx, po); err != nil {
			return fmt.Errorf("failed to create PO: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return po, nil
}

func (s *ProcurementService) GetPO(id uint) (*entity.PurchaseOrder, error) {
	return s.purchaseRepo.GetByID(id)
}

func (s *ProcurementService) ListPOs() ([]repository.PORow, error) {
	return s.purchaseRepo.List(10)
}
