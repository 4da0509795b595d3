package handler

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReportService returns canned results or a fixed error.
type stubReportService struct {
	report *model.SalesReport
	err    error
}

func (s *stubReportService) GenerateSalesReport(startDate, endDate time.Time, reportType model.ReportType) (*model.SalesReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func (s *stubReportService) ListTransactions(startDate, endDate *time.Time, limit, offset int) ([]model.Transaction, error) {
	return nil, s.err
}

func (s *stubReportService) GetTransactionDetails(id uuid.UUID) (*model.Transaction, error) {
	return nil, s.err
}

func reportApp(svc service.ReportService) *fiber.App {
	app := fiber.New()
	h := NewReportHandler(svc)
	app.Get("/reports/sales", h.GenerateSalesReport)
	app.Get("/transactions", h.GetTransactions)
	return app
}

func TestGenerateSalesReportMapsServiceErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: bad window", service.ErrInvalidInput), 400},
		{"storage failure", errors.New("connection reset"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := reportApp(&stubReportService{err: tc.err})

			req := httptest.NewRequest("GET", "/reports/sales?start_date=2024-03-01&end_date=2024-03-31", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestGenerateSalesReportRequiresDates(t *testing.T) {
	app := reportApp(&stubReportService{report: &model.SalesReport{}})

	req := httptest.NewRequest("GET", "/reports/sales?start_date=2024-03-01", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGenerateSalesReportRejectsUnknownType(t *testing.T) {
	app := reportApp(&stubReportService{report: &model.SalesReport{}})

	req := httptest.NewRequest("GET", "/reports/sales?start_date=2024-03-01&end_date=2024-03-31&report_type=hourly", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGenerateSalesReportOK(t *testing.T) {
	app := reportApp(&stubReportService{report: &model.SalesReport{TotalTransactions: 2}})

	req := httptest.NewRequest("GET", "/reports/sales?start_date=2024-03-01&end_date=2024-03-31", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestGetTransactionsMapsServiceErrors(t *testing.T) {
	app := reportApp(&stubReportService{err: errors.New("connection reset")})

	req := httptest.NewRequest("GET", "/transactions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
