package handler

import (
	"errors"
	"time"

	"go-pos-backend/internal/service"

	"github.com/google/uuid"
)

// statusFor maps the service failure taxonomy onto HTTP codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return 404
	case errors.Is(err, service.ErrInsufficientStock):
		return 409
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrPaymentMismatch):
		return 400
	default:
		return 500
	}
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// parseDate accepts RFC 3339 or a plain calendar date. Plain end dates
// are pushed to the last instant of the day so range bounds stay
// inclusive.
func parseDate(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
