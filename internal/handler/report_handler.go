package handler

import (
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) GenerateSalesReport(c *fiber.Ctx) error {
	startParam := c.Query("start_date")
	endParam := c.Query("end_date")
	if startParam == "" || endParam == "" {
		return c.Status(400).JSON(fiber.Map{"error": "start_date and end_date are required"})
	}

	startDate, err := parseDate(startParam, false)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start_date"})
	}
	endDate, err := parseDate(endParam, true)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end_date"})
	}

	reportType := model.ReportType(c.Query("report_type", string(model.ReportDaily)))
	switch reportType {
	case model.ReportDaily, model.ReportWeekly, model.ReportMonthly:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid report_type"})
	}

	report, err := h.service.GenerateSalesReport(startDate, endDate, reportType)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

func (h *ReportHandler) GetTransactions(c *fiber.Ctx) error {
	var startDate, endDate *time.Time

	if startParam := c.Query("start_date"); startParam != "" {
		t, err := parseDate(startParam, false)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start_date"})
		}
		startDate = &t
	}
	if endParam := c.Query("end_date"); endParam != "" {
		t, err := parseDate(endParam, true)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end_date"})
		}
		endDate = &t
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	transactions, err := h.service.ListTransactions(startDate, endDate, limit, offset)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(transactions)
}

func (h *ReportHandler) GetTransaction(c *fiber.Ctx) error {
	txID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	txn, err := h.service.GetTransactionDetails(txID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if txn == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(txn)
}
