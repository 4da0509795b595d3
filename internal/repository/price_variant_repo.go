package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PriceVariantRepository interface {
	Create(variant *model.PriceVariant) error
	FindByID(id uuid.UUID) (*model.PriceVariant, error)
	FindByProduct(productID uuid.UUID) ([]model.PriceVariant, error)
}

type priceVariantRepo struct {
	db *gorm.DB
}

func NewPriceVariantRepo(db *gorm.DB) PriceVariantRepository {
	return &priceVariantRepo{db}
}

func (r *priceVariantRepo) Create(variant *model.PriceVariant) error {
	return r.db.Create(variant).Error
}

func (r *priceVariantRepo) FindByID(id uuid.UUID) (*model.PriceVariant, error) {
	var variant model.PriceVariant
	err := r.db.First(&variant, "id = ?", id).Error
	return &variant, err
}

func (r *priceVariantRepo) FindByProduct(productID uuid.UUID) ([]model.PriceVariant, error) {
	var variants []model.PriceVariant
	err := r.db.Where("product_id = ?", productID).Order("created_at ASC").Find(&variants).Error
	return variants, err
}
