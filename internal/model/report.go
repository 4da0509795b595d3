package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportType string

const (
	ReportDaily   ReportType = "daily"
	ReportWeekly  ReportType = "weekly"
	ReportMonthly ReportType = "monthly"
)

// SalesReport summarizes completed transactions in a date range.
type SalesReport struct {
	TotalTransactions       int64           `json:"total_transactions"`
	TotalRevenue            decimal.Decimal `json:"total_revenue"`
	TotalItemsSold          int64           `json:"total_items_sold"`
	AverageTransactionValue decimal.Decimal `json:"average_transaction_value"`
	TopProducts             []TopProduct    `json:"top_products"`
	DailyBreakdown          []DailySales    `json:"daily_breakdown"`
}

type TopProduct struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type DailySales struct {
	Date         string          `json:"date"`
	Transactions int64           `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}
