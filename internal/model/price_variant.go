package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceVariant is an alternate priced option of a product (e.g. size).
// A product may have several; the is_default flag is advisory only.
type PriceVariant struct {
	BaseModel
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product     *Product        `json:"product,omitempty" validate:"-"`
	VariantName string          `gorm:"type:varchar(255);not null" json:"variant_name" validate:"required"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price" validate:"required"`
	IsDefault   bool            `gorm:"not null;default:false" json:"is_default"`
}
