package service

import (
	"errors"
	"fmt"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService covers the plain persistence surface around the core:
// categories, products, price variants, barcode lookup and raw stock
// adjustment.
type CatalogService interface {
	CreateCategory(req *model.Category) error
	GetCategories() ([]model.Category, error)

	CreateProduct(req *model.Product) error
	GetProducts() ([]model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProductByBarcode(barcode string) (*model.Product, error)

	CreatePriceVariant(req *model.PriceVariant) error
	GetPriceVariants(productID uuid.UUID) ([]model.PriceVariant, error)

	AdjustStock(req *model.StockAdjustmentRequest) (int, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	variantRepo  repository.PriceVariantRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	variantRepo repository.PriceVariantRepository,
	db *gorm.DB,
	hub *ws.Hub,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		db:           db,
		wsHub:        hub,
	}
}

func (s *catalogService) CreateCategory(req *model.Category) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, firstErr.FailedField, firstErr.Tag)
	}
	return s.categoryRepo.Create(req)
}

func (s *catalogService) GetCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, firstErr.FailedField, firstErr.Tag)
	}
	if !req.BasePrice.IsPositive() {
		return fmt.Errorf("%w: base_price must be positive", ErrInvalidInput)
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return fmt.Errorf("%w: category %s", ErrNotFound, *req.CategoryID)
		}
	}
	return s.productRepo.Create(req)
}

func (s *catalogService) GetProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, firstErr.FailedField, firstErr.Tag)
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Barcode != nil {
		product.Barcode = req.Barcode
	}
	if req.BasePrice != nil {
		if !req.BasePrice.IsPositive() {
			return nil, fmt.Errorf("%w: base_price must be positive", ErrInvalidInput)
		}
		product.BasePrice = *req.BasePrice
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deactivates instead of deleting so committed
// transaction items keep a valid product reference
func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if err := s.productRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *catalogService) GetProductByBarcode(barcode string) (*model.Product, error) {
	product, err := s.productRepo.FindByBarcode(barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) CreatePriceVariant(req *model.PriceVariant) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, firstErr.FailedField, firstErr.Tag)
	}
	if !req.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		return fmt.Errorf("%w: product %s", ErrNotFound, req.ProductID)
	}
	return s.variantRepo.Create(req)
}

func (s *catalogService) GetPriceVariants(productID uuid.UUID) ([]model.PriceVariant, error) {
	return s.variantRepo.FindByProduct(productID)
}

// AdjustStock applies a raw add/subtract/set under a row lock and
// rejects any result below zero. Checkout owns sale decrements; this
// is the back-office correction path.
func (s *catalogService) AdjustStock(req *model.StockAdjustmentRequest) (int, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return 0, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, firstErr.FailedField, firstErr.Tag)
	}

	var newQuantity int
	var productName string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.LockByID(tx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %s", ErrNotFound, req.ProductID)
			}
			return err
		}

		switch req.Operation {
		case model.StockAdd:
			newQuantity = product.StockQuantity + req.QuantityChange
		case model.StockSubtract:
			newQuantity = product.StockQuantity - req.QuantityChange
		case model.StockSet:
			newQuantity = req.QuantityChange
		default:
			return fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, req.Operation)
		}

		if newQuantity < 0 {
			return fmt.Errorf("%w: operation would leave product '%s' at %d",
				ErrInsufficientStock, product.Name, newQuantity)
		}

		productName = product.Name
		return s.productRepo.UpdateStock(tx, product.ID, newQuantity)
	})
	if err != nil {
		return 0, err
	}

	go s.wsHub.BroadcastJSON(ws.StockEvent{
		Type:   "stock_update",
		Action: "stock_adjusted",
		Product: ws.StockDetails{
			ID:       req.ProductID,
			Name:     productName,
			NewStock: newQuantity,
		},
	})

	return newQuantity, nil
}
