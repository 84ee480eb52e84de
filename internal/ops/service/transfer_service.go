package service

import (
	"errors"
	"fmt"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"gorm.io/gorm"
)

var (
	// ErrSameLocation 调出与调入门店相同
	ErrSameLocation = errors.New("from and to locations must be different")
	// ErrLocationNotFound 门店不存在
	ErrLocationNotFound = errors.New("location not found")
)

type TransferService struct {
	requestRepo *repository.RequestRepository
	catalogRepo *repository.CatalogRepository
	refRepo     *repository.RefRepository
	db          *gorm.DB
}

func NewTransferService(rr *repository.RequestRepository, cr *repository.CatalogRepository, refr *repository.RefRepository, db *gorm.DB) *TransferService {
	return &TransferService{requestRepo: rr, catalogRepo: cr, refRepo: refr, db: db}
}

type TransferItemInput struct {
	MaterialID uint    `json:"materialId" binding:"required"`
	Qty        float64 `json:"qty" binding:"required,gt=0"`
}

type CreateTransferRequest struct {
	FromLocationID uint                `json:"fromLocationId" binding:"required"`
	ToLocationID   uint                `json:"toLocationId" binding:"required"`
	RequestedBy    string              `json:"requestedBy" binding:"required"`
	Items          []TransferItemInput `json:"items" binding:"required,min=1"`
}

// CreateTransfer 创建调拨申请，初始状态 pending。两端门店必须存在且不同，
// 这里在服务端复查，不依赖前端拦截
func (s *TransferService) CreateTransfer(req CreateTransferRequest) (string, error) {
	if req.FromLocationID == req.ToLocationID {
		return "", ErrSameLocation
	}
	for _, id := range []uint{req.FromLocationID, req.ToLocationID} {
		if _, err := s.catalogRepo.GetLocation(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", fmt.Errorf("%w: %d", ErrLocationNotFound, id)
			}
			return "", err
		}
	}

	var requestNumber string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.refRepo.Next(tx, "TR")
		if err != nil {
			return err
		}
		requestNumber = number

		items := make([]entity.StockRequestItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, entity.StockRequestItem{
				RawMaterialID:     item.MaterialID,
				QuantityRequested: item.Qty,
			})
		}
		request := &entity.StockRequest{
			RequestNumber:  requestNumber,
			FromLocationID: req.FromLocationID,
			ToLocationID:   req.ToLocationID,
			RequestedBy:    req.RequestedBy,
			Status:         entity.RequestStatusPending,
			Items:          items,
		}
		if err := s.requestRepo.Create(tx, request); err != nil {
			return fmt.Errorf("failed to create transfer request: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return requestNumber, nil
}

func (s *TransferService) ListTransfers() ([]repository.RequestRow, error) {
	return s.requestRepo.List()
}
