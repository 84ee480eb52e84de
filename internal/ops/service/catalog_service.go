package service

import (
	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
)

type CatalogService struct {
	catalogRepo *repository.CatalogRepository
}

func NewCatalogService(cr *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: cr}
}

func (s *CatalogService) ListLocations() ([]entity.Location, error) {
	return s.catalogRepo.ListLocations()
}

func (s *CatalogService) ListMaterials() ([]entity.RawMaterial, error) {
	return s.catalogRepo.ListMaterials()
}
