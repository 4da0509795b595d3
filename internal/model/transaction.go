package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
	// PaymentMixed marks a transaction settled by more than one entry.
	// Only ever set on the Transaction row, never on a PaymentRecord.
	PaymentMixed PaymentMethod = "mixed"
)

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusCompleted PaymentStatus = "completed"
	StatusCancelled PaymentStatus = "cancelled"
)

// Transaction is an immutable committed sale. Amounts are snapshots:
// final_amount = total_amount + tax_amount - discount_amount.
type Transaction struct {
	BaseModel
	TransactionNumber string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"transaction_number"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	TaxAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"tax_amount"`
	DiscountAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount_amount"`
	FinalAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"final_amount"`
	PaymentMethod     PaymentMethod   `gorm:"type:varchar(10);not null" json:"payment_method"`
	PaymentStatus     PaymentStatus   `gorm:"type:varchar(10);not null;default:'pending'" json:"payment_status"`
	TransactionDate   time.Time       `gorm:"not null;index" json:"transaction_date"`

	Items    []TransactionItem `json:"items,omitempty"`
	Payments []PaymentRecord   `json:"payments,omitempty"`
}

// TransactionItem snapshots the resolved unit price at commit time so
// later catalog price changes never rewrite history.
type TransactionItem struct {
	BaseModel
	TransactionID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product        *Product        `json:"product,omitempty"`
	PriceVariantID *uuid.UUID      `gorm:"type:uuid" json:"price_variant_id"`
	PriceVariant   *PriceVariant   `json:"price_variant,omitempty"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount_amount"`
}

type PaymentRecord struct {
	BaseModel
	TransactionID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"transaction_id"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(10);not null" json:"payment_method"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	ReferenceNumber *string         `gorm:"type:varchar(128)" json:"reference_number"`
}
