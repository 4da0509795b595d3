package ws

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastJSONSaleEvent(t *testing.T) {
	hub := NewHub()

	received := make(chan []byte, 1)
	go func() { received <- <-hub.Broadcast }()

	hub.BroadcastJSON(SaleEvent{
		Type:   "sale",
		Action: "transaction_committed",
		Transaction: SaleDetails{
			ID:                uuid.New(),
			TransactionNumber: "TXN-1709312400000-ab12cd34",
			FinalAmount:       decimal.RequireFromString("22.00"),
			PaymentMethod:     "cash",
			ItemCount:         1,
		},
	})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(<-received, &decoded))

	assert.Equal(t, "sale", decoded["type"])
	assert.Equal(t, "transaction_committed", decoded["action"])

	txn, ok := decoded["transaction"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "TXN-1709312400000-ab12cd34", txn["transaction_number"])
	assert.Equal(t, "cash", txn["payment_method"])
}

func TestBroadcastJSONStockEvent(t *testing.T) {
	hub := NewHub()

	received := make(chan []byte, 1)
	go func() { received <- <-hub.Broadcast }()

	hub.BroadcastJSON(StockEvent{
		Type:   "stock_update",
		Action: "stock_adjusted",
		Product: StockDetails{
			ID:       uuid.New(),
			Name:     "Americano",
			NewStock: 48,
		},
	})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(<-received, &decoded))

	assert.Equal(t, "stock_update", decoded["type"])
	product, ok := decoded["product"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Americano", product["name"])
	assert.Equal(t, float64(48), product["new_stock"])
}
