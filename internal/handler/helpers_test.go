package handler

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"go-pos-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: product x", service.ErrNotFound), 404},
		{fmt.Errorf("%w: short by 5.00", service.ErrInsufficientStock), 409},
		{fmt.Errorf("%w: empty cart", service.ErrInvalidInput), 400},
		{fmt.Errorf("%w: paid 5.00, due 10.00", service.ErrPaymentMismatch), 400},
		{errors.New("connection reset"), 500},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), "error %v", tc.err)
	}
}

func TestParseDatePlainDate(t *testing.T) {
	start, err := parseDate("2024-03-01", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestParseDateEndOfDay(t *testing.T) {
	// A plain end date covers its whole day (inclusive bound)
	end, err := parseDate("2024-03-01", true)
	require.NoError(t, err)
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.Before(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
}

func TestParseDateRFC3339(t *testing.T) {
	ts, err := parseDate("2024-03-01T15:04:05Z", true)
	require.NoError(t, err)
	// Explicit timestamps are taken as-is, no end-of-day shifting
	assert.Equal(t, 15, ts.Hour())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := parseDate("not-a-date", false)
	assert.Error(t, err)
}
