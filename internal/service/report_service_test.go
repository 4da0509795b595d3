package service

import (
	"errors"
	"testing"
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubTxRepo implements repository.TransactionRepository with canned data.
type stubTxRepo struct {
	totalTransactions int64
	totalRevenue      decimal.Decimal
	itemsSold         int64
	topProducts       []model.TopProduct
	dailyBreakdown    []model.DailySales
	transactions      []model.Transaction
	details           *model.Transaction
	detailsErr        error

	gotLimit  int
	gotOffset int
}

func (s *stubTxRepo) FindFiltered(startDate, endDate *time.Time, limit, offset int) ([]model.Transaction, error) {
	s.gotLimit = limit
	s.gotOffset = offset
	return s.transactions, nil
}

func (s *stubTxRepo) FindDetails(id uuid.UUID) (*model.Transaction, error) {
	if s.detailsErr != nil {
		return nil, s.detailsErr
	}
	return s.details, nil
}

func (s *stubTxRepo) GetSalesTotals(startDate, endDate time.Time) (int64, decimal.Decimal, error) {
	return s.totalTransactions, s.totalRevenue, nil
}

func (s *stubTxRepo) GetItemsSold(startDate, endDate time.Time) (int64, error) {
	return s.itemsSold, nil
}

func (s *stubTxRepo) GetTopProducts(startDate, endDate time.Time, limit int) ([]model.TopProduct, error) {
	return s.topProducts, nil
}

func (s *stubTxRepo) GetDailyBreakdown(startDate, endDate time.Time) ([]model.DailySales, error) {
	return s.dailyBreakdown, nil
}

func reportWindow() (time.Time, time.Time) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	return start, end
}

func TestGenerateSalesReportEmptyWindow(t *testing.T) {
	repo := &stubTxRepo{totalRevenue: decimal.Zero}
	svc := NewReportService(repo)

	start, end := reportWindow()
	report, err := svc.GenerateSalesReport(start, end, model.ReportDaily)
	require.NoError(t, err)

	assert.Zero(t, report.TotalTransactions)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.Zero(t, report.TotalItemsSold)
	// No division by zero: the average is simply zero
	assert.True(t, report.AverageTransactionValue.IsZero())
	assert.Empty(t, report.TopProducts)
	assert.NotNil(t, report.TopProducts)
	assert.Empty(t, report.DailyBreakdown)
	assert.NotNil(t, report.DailyBreakdown)
}

func TestGenerateSalesReportAverages(t *testing.T) {
	// Two completed transactions of 31.00 and 44.00; anything
	// cancelled never reaches the repo aggregates
	repo := &stubTxRepo{
		totalTransactions: 2,
		totalRevenue:      dec("75.00"),
		itemsSold:         5,
	}
	svc := NewReportService(repo)

	start, end := reportWindow()
	report, err := svc.GenerateSalesReport(start, end, model.ReportDaily)
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.TotalTransactions)
	assert.True(t, report.TotalRevenue.Equal(dec("75.00")))
	assert.Equal(t, int64(5), report.TotalItemsSold)
	assert.True(t, report.AverageTransactionValue.Equal(dec("37.50")))
}

func TestGenerateSalesReportAverageRounding(t *testing.T) {
	repo := &stubTxRepo{
		totalTransactions: 3,
		totalRevenue:      dec("100.00"),
	}
	svc := NewReportService(repo)

	start, end := reportWindow()
	report, err := svc.GenerateSalesReport(start, end, model.ReportDaily)
	require.NoError(t, err)

	assert.True(t, report.AverageTransactionValue.Equal(dec("33.33")), "got %s", report.AverageTransactionValue)
}

func TestGenerateSalesReportTypeDoesNotChangeBucketing(t *testing.T) {
	// report_type is accepted but the breakdown stays per-day
	daily := []model.DailySales{
		{Date: "2024-03-01", Transactions: 1, Revenue: dec("31.00")},
		{Date: "2024-03-02", Transactions: 1, Revenue: dec("44.00")},
	}
	repo := &stubTxRepo{
		totalTransactions: 2,
		totalRevenue:      dec("75.00"),
		dailyBreakdown:    daily,
	}
	svc := NewReportService(repo)

	start, end := reportWindow()
	for _, rt := range []model.ReportType{model.ReportDaily, model.ReportWeekly, model.ReportMonthly} {
		report, err := svc.GenerateSalesReport(start, end, rt)
		require.NoError(t, err)
		assert.Equal(t, daily, report.DailyBreakdown, "report_type %s", rt)
	}
}

func TestGenerateSalesReportPassesThroughRankings(t *testing.T) {
	top := []model.TopProduct{
		{ProductID: uuid.New(), ProductName: "Americano", QuantitySold: 12, Revenue: dec("48.00")},
		{ProductID: uuid.New(), ProductName: "Latte", QuantitySold: 7, Revenue: dec("35.00")},
	}
	repo := &stubTxRepo{
		totalTransactions: 4,
		totalRevenue:      dec("83.00"),
		topProducts:       top,
	}
	svc := NewReportService(repo)

	start, end := reportWindow()
	report, err := svc.GenerateSalesReport(start, end, model.ReportDaily)
	require.NoError(t, err)
	assert.Equal(t, top, report.TopProducts)
}

func TestListTransactionsDefaults(t *testing.T) {
	repo := &stubTxRepo{}
	svc := NewReportService(repo)

	_, err := svc.ListTransactions(nil, nil, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)
}

func TestGetTransactionDetailsMissing(t *testing.T) {
	repo := &stubTxRepo{detailsErr: gorm.ErrRecordNotFound}
	svc := NewReportService(repo)

	txn, err := svc.GetTransactionDetails(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, txn)
}

func TestGetTransactionDetailsStorageError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &stubTxRepo{detailsErr: boom}
	svc := NewReportService(repo)

	_, err := svc.GetTransactionDetails(uuid.New())
	assert.ErrorIs(t, err, boom)
}
