package service

import (
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services 服务集合
type Services struct {
	Catalog   *CatalogService
	StockTake *StockTakeService
	GRN       *GRNService
	Procure   *ProcurementService
	Transfer  *TransferService
	Checklist *ChecklistService
	Dashboard *DashboardService
}

func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) *Services {
	return &Services{
		Catalog:   NewCatalogService(repos.Catalog),
		StockTake: NewStockTakeService(repos.StockTake, repos.Catalog, repos.Audit, db),
		GRN:       NewGRNService(repos.Movement, repos.Ref, db),
		Procure:   NewProcurementService(repos.Purchase, repos.Ref, db),
		Transfer:  NewTransferService(repos.Request, repos.Catalog, repos.Ref, db),
		Checklist: NewChecklistService(repos.Checklist, db),
		Dashboard: NewDashboardService(repos.Dashboard, rdb, logger),
	}
}
