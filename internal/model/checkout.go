package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is a transient, caller-supplied line item. It has no
// identity of its own; the committed counterpart is TransactionItem.
type CartLine struct {
	ProductID      uuid.UUID       `json:"product_id" validate:"uuid_required"`
	PriceVariantID *uuid.UUID      `json:"price_variant_id"`
	Quantity       int             `json:"quantity" validate:"required,gt=0"`
	DiscountAmount decimal.Decimal `json:"discount_amount" validate:"dgte0"`
}

// PaymentEntry is a transient payment tender; persisted as PaymentRecord.
type PaymentEntry struct {
	PaymentMethod   PaymentMethod   `json:"payment_method" validate:"required,oneof=cash card mobile"`
	Amount          decimal.Decimal `json:"amount" validate:"dgt0"`
	ReferenceNumber *string         `json:"reference_number"`
}

type CreateTransactionRequest struct {
	Items          []CartLine      `json:"items" validate:"required,min=1,dive"`
	TaxAmount      decimal.Decimal `json:"tax_amount" validate:"dgte0"`
	DiscountAmount decimal.Decimal `json:"discount_amount" validate:"dgte0"`
	Payments       []PaymentEntry  `json:"payments" validate:"required,min=1,dive"`
}

type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
	StockSet      StockOperation = "set"
)

type StockAdjustmentRequest struct {
	ProductID      uuid.UUID      `json:"product_id" validate:"uuid_required"`
	QuantityChange int            `json:"quantity_change"`
	Operation      StockOperation `json:"operation" validate:"required,oneof=add subtract set"`
}
