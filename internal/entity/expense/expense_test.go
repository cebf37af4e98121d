package expense

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParseCategory_ShouldIgnoreCase(t *testing.T) {
	c, err := ParseCategory("  transPORT ")
	require.NoError(t, err)
	assert.Equal(t, Transport, c)
}

func Test_OnParseCategory_ShouldRejectUnknown(t *testing.T) {
	_, err := ParseCategory("Travel")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func Test_OnNewRecord_ShouldDropTimeOfDay(t *testing.T) {
	date := time.Date(2024, 1, 1, 18, 45, 12, 0, time.UTC)

	rec := NewRecord(date, Food, decimal.NewFromInt(500), " lunch ")

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, "lunch", rec.Description)
}

func Test_OnValidate(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rec  Record
		err  error
	}{
		{"valid", NewRecord(date, Bills, decimal.RequireFromString("12.50"), ""), nil},
		{"zero amount", NewRecord(date, Other, decimal.Zero, ""), nil},
		{"negative amount", NewRecord(date, Food, decimal.NewFromInt(-1), ""), ErrNegativeAmount},
		{"unknown category", NewRecord(date, Category("Travel"), decimal.NewFromInt(1), ""), ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}
