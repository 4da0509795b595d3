package service

import (
	"errors"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const topProductsLimit = 10

type ReportService interface {
	GenerateSalesReport(startDate, endDate time.Time, reportType model.ReportType) (*model.SalesReport, error)
	ListTransactions(startDate, endDate *time.Time, limit, offset int) ([]model.Transaction, error)
	GetTransactionDetails(id uuid.UUID) (*model.Transaction, error)
}

type reportService struct {
	txRepo repository.TransactionRepository
}

func NewReportService(txRepo repository.TransactionRepository) ReportService {
	return &reportService{txRepo: txRepo}
}

// GenerateSalesReport summarizes completed transactions with
// transaction_date in [startDate, endDate]. Only reads; safe to run
// concurrently with checkouts.
//
// reportType is accepted for API compatibility but the breakdown is
// always per calendar day regardless of its value.
func (s *reportService) GenerateSalesReport(startDate, endDate time.Time, reportType model.ReportType) (*model.SalesReport, error) {
	totalTransactions, totalRevenue, err := s.txRepo.GetSalesTotals(startDate, endDate)
	if err != nil {
		return nil, err
	}

	totalItemsSold, err := s.txRepo.GetItemsSold(startDate, endDate)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.txRepo.GetTopProducts(startDate, endDate, topProductsLimit)
	if err != nil {
		return nil, err
	}

	dailyBreakdown, err := s.txRepo.GetDailyBreakdown(startDate, endDate)
	if err != nil {
		return nil, err
	}

	averageTransactionValue := decimal.Zero
	if totalTransactions > 0 {
		averageTransactionValue = totalRevenue.
			Div(decimal.NewFromInt(totalTransactions)).
			Round(2)
	}

	if topProducts == nil {
		topProducts = []model.TopProduct{}
	}
	if dailyBreakdown == nil {
		dailyBreakdown = []model.DailySales{}
	}

	return &model.SalesReport{
		TotalTransactions:       totalTransactions,
		TotalRevenue:            totalRevenue,
		TotalItemsSold:          totalItemsSold,
		AverageTransactionValue: averageTransactionValue,
		TopProducts:             topProducts,
		DailyBreakdown:          dailyBreakdown,
	}, nil
}

func (s *reportService) ListTransactions(startDate, endDate *time.Time, limit, offset int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.txRepo.FindFiltered(startDate, endDate, limit, offset)
}

// GetTransactionDetails returns the transaction with its items
// (product and variant preloaded) and payments, or nil when absent.
func (s *reportService) GetTransactionDetails(id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.txRepo.FindDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return txn, nil
}
