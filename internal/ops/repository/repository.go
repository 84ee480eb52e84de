package repository

import "gorm.io/gorm"

// Repositories 仓库集合
type Repositories struct {
	Catalog   *CatalogRepository
	StockTake *StockTakeRepository
	Movement  *MovementRepository
	Request   *RequestRepository
	Purchase  *PurchaseRepository
	Checklist *ChecklistRepository
	Audit     *AuditRepository
	Ref       *RefRepository
	Dashboard *DashboardRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Catalog:   NewCatalogRepository(db),
		StockTake: NewStockTakeRepository(db),
		Movement:  NewMovementRepository(db),
		Request:   NewRequestRepository(db),
		Purchase:  NewPurchaseRepository(db),
		Checklist: NewChecklistRepository(db),
		Audit:     NewAuditRepository(db),
		Ref:       NewRefRepository(db),
		Dashboard: NewDashboardRepository(db),
	}
}
