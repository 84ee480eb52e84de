package handler

import (
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"go.uber.org/zap"
)

// Handlers HTTP处理器集合
type Handlers struct {
	Catalog   *CatalogHandler
	StockTake *StockTakeHandler
	GRN       *GRNHandler
	Procure   *ProcurementHandler
	Transfer  *TransferHandler
	Checklist *ChecklistHandler
	Dashboard *DashboardHandler
}

func NewHandlers(services *service.Services, logger *zap.Logger) *Handlers {
	return &Handlers{
		Catalog:   NewCatalogHandler(services.Catalog, logger),
		StockTake: NewStockTakeHandler(services.StockTake),
		GRN:       NewGRNHandler(services.GRN, logger),
		Procure:   NewProcurementHandler(services.Procure, logger),
		Transfer:  NewTransferHandler(services.Transfer, logger),
		Checklist: NewChecklistHandler(services.Checklist, logger),
		Dashboard: NewDashboardHandler(services.Dashboard, logger),
	}
}
