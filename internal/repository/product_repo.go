package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByBarcode(barcode string) (*model.Product, error)
	Update(product *model.Product) error
	Deactivate(id uuid.UUID) error
	// LockByID loads the product row FOR UPDATE; must run inside tx
	LockByID(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Preload("PriceVariants").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("PriceVariants").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "barcode = ?", barcode).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// Deactivate soft deletes by flipping is_active; historical transaction
// items keep referencing the row
func (r *productRepo) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&model.Product{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) LockByID(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error
	return &product, err
}

// UpdateStock accepts the tx handle so it can join an open transaction
func (r *productRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock_quantity", newStock).Error
}
