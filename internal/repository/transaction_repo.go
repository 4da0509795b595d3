package repository

import (
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	FindFiltered(startDate, endDate *time.Time, limit, offset int) ([]model.Transaction, error)
	FindDetails(id uuid.UUID) (*model.Transaction, error)
	GetSalesTotals(startDate, endDate time.Time) (int64, decimal.Decimal, error)
	GetItemsSold(startDate, endDate time.Time) (int64, error)
	GetTopProducts(startDate, endDate time.Time, limit int) ([]model.TopProduct, error)
	GetDailyBreakdown(startDate, endDate time.Time) ([]model.DailySales, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) FindFiltered(startDate, endDate *time.Time, limit, offset int) ([]model.Transaction, error) {
	var transactions []model.Transaction

	query := r.db.Model(&model.Transaction{})
	if startDate != nil {
		query = query.Where("transaction_date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("transaction_date <= ?", *endDate)
	}

	err := query.Order("transaction_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindDetails(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.PriceVariant").
		Preload("Payments").
		First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) GetSalesTotals(startDate, endDate time.Time) (int64, decimal.Decimal, error) {
	var result struct {
		TotalTransactions int64
		TotalRevenue      decimal.Decimal
	}

	err := r.db.Model(&model.Transaction{}).
		Select("COUNT(id) as total_transactions, COALESCE(SUM(final_amount), 0) as total_revenue").
		Where("payment_status = ? AND transaction_date BETWEEN ? AND ?", model.StatusCompleted, startDate, endDate).
		Scan(&result).Error
	if err != nil {
		return 0, decimal.Zero, err
	}

	return result.TotalTransactions, result.TotalRevenue, nil
}

func (r *transactionRepo) GetItemsSold(startDate, endDate time.Time) (int64, error) {
	var itemsSold int64

	err := r.db.Model(&model.TransactionItem{}).
		Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
		Where("transactions.payment_status = ? AND transactions.transaction_date BETWEEN ? AND ?",
			model.StatusCompleted, startDate, endDate).
		Select("COALESCE(SUM(transaction_items.quantity), 0)").
		Scan(&itemsSold).Error
	return itemsSold, err
}

// GetTopProducts ranks by summed revenue descending; product id breaks
// ties so the ordering stays deterministic
func (r *transactionRepo) GetTopProducts(startDate, endDate time.Time, limit int) ([]model.TopProduct, error) {
	var results []model.TopProduct

	rows, err := r.db.Model(&model.TransactionItem{}).
		Select(`
			transaction_items.product_id,
			products.name,
			COALESCE(SUM(transaction_items.quantity), 0) as quantity_sold,
			COALESCE(SUM(transaction_items.total_price), 0) as revenue
		`).
		Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
		Joins("JOIN products ON products.id = transaction_items.product_id").
		Where("transactions.payment_status = ? AND transactions.transaction_date BETWEEN ? AND ?",
			model.StatusCompleted, startDate, endDate).
		Group("transaction_items.product_id, products.name").
		Order("revenue DESC, transaction_items.product_id ASC").
		Limit(limit).
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data model.TopProduct
		if err := rows.Scan(&data.ProductID, &data.ProductName, &data.QuantitySold, &data.Revenue); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

func (r *transactionRepo) GetDailyBreakdown(startDate, endDate time.Time) ([]model.DailySales, error) {
	var results []model.DailySales

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			TO_CHAR(DATE(transaction_date), 'YYYY-MM-DD') as date,
			COUNT(id) as transactions,
			COALESCE(SUM(final_amount), 0) as revenue
		`).
		Where("payment_status = ? AND transaction_date BETWEEN ? AND ?", model.StatusCompleted, startDate, endDate).
		Group("DATE(transaction_date)").
		Order("DATE(transaction_date) ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data model.DailySales
		if err := rows.Scan(&data.Date, &data.Transactions, &data.Revenue); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}
