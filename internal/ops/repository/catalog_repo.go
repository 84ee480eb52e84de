package repository

import (
	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListLocations 获取启用中的门店/仓库
func (r *CatalogRepository) ListLocations() ([]entity.Location, error) {
	var locations []entity.Location
	err := r.db.Where("is_active = ?", true).
		Order("type, name").
		Find(&locations).Error
	return locations, err
}

func (r *CatalogRepository) GetLocation(id uint) (*entity.Location, error) {
	var loc entity.Location
	err := r.db.First(&loc, id).Error
	return &loc, err
}

// ListMaterials 获取启用中的物料，带包装换算供盘点页换算显示
func (r *CatalogRepository) ListMaterials() ([]entity.RawMaterial, error) {
	var materials []entity.RawMaterial
	err := r.db.Preload("Conversion").
		Where("is_active = ?", true).
		Order("category, name").
		Find(&materials).Error
	return materials, err
}

// GetMaterialWithConversion 获取物料及其包装换算，物料不存在时返回 gorm.ErrRecordNotFound
func (r *CatalogRepository) GetMaterialWithConversion(tx *gorm.DB, id uint) (*entity.RawMaterial, error) {
	var material entity.RawMaterial
	err := tx.Preload("Conversion").First(&material, id).Error
	return &material, err
}
