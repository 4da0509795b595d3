package ws

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleEvent announces a committed transaction to connected terminals.
type SaleEvent struct {
	Type        string      `json:"type"`
	Action      string      `json:"action"`
	Transaction SaleDetails `json:"transaction"`
}

type SaleDetails struct {
	ID                uuid.UUID       `json:"id"`
	TransactionNumber string          `json:"transaction_number"`
	FinalAmount       decimal.Decimal `json:"final_amount"`
	PaymentMethod     string          `json:"payment_method"`
	ItemCount         int             `json:"item_count"`
}

// StockEvent announces a stock level change (back-office adjustment).
type StockEvent struct {
	Type    string       `json:"type"`
	Action  string       `json:"action"`
	Product StockDetails `json:"product"`
}

type StockDetails struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	NewStock int       `json:"new_stock"`
}
