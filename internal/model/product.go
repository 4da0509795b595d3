package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description *string `gorm:"type:text" json:"description"`
	Barcode     *string `gorm:"type:varchar(64);uniqueIndex" json:"barcode"`

	// BasePrice applies when a cart line carries no price variant.
	BasePrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price" validate:"required"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity" validate:"gte=0"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Category   *Category  `json:"category,omitempty" validate:"-"`
	IsActive   bool       `gorm:"not null;default:true" json:"is_active"`

	PriceVariants []PriceVariant `json:"price_variants,omitempty"`
}

// UpdateProductRequest carries a partial update; nil fields are left
// untouched.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1"`
	Description   *string          `json:"description"`
	Barcode       *string          `json:"barcode"`
	BasePrice     *decimal.Decimal `json:"base_price"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,gte=0"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	IsActive      *bool            `json:"is_active"`
}
