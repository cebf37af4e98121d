package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/model/ledger"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func sampleLedger() *ledger.Ledger {
	l := ledger.New()
	l.Append(expense.NewRecord(day(1), expense.Food, decimal.NewFromInt(500), "lunch"))
	l.Append(expense.NewRecord(day(1), expense.Transport, decimal.NewFromInt(200), ""))
	l.Append(expense.NewRecord(day(2), expense.Food, decimal.NewFromInt(300), "dinner"))
	return l
}

func Test_OnTable_ShouldAlignColumns(t *testing.T) {
	got := Table(sampleLedger().Records(), "PKR")

	want := strings.Join([]string{
		"      Date  Category Amount (PKR) Description",
		"2024-01-01      Food       500.00       lunch",
		"2024-01-01 Transport       200.00            ",
		"2024-01-02      Food       300.00      dinner",
	}, "\n")
	assert.Equal(t, want, got)
}

func Test_OnTable_EmptyShouldRenderHeaderOnly(t *testing.T) {
	assert.Equal(t, "Date Category Amount (EUR) Description", Table(nil, "EUR"))
}

func Test_OnCategoryBreakdown_ShouldSortByAmountWithShares(t *testing.T) {
	got := CategoryBreakdown(sampleLedger().TotalsByCategory(), "PKR")

	want := strings.Join([]string{
		"Food: 800.00 PKR (80.0%)",
		"Transport: 200.00 PKR (20.0%)",
		"",
		"Total: 1000.00 PKR",
	}, "\n")
	assert.Equal(t, want, got)
}

func Test_OnCategoryBreakdown_TiesShouldSortByName(t *testing.T) {
	got := CategoryBreakdown(map[expense.Category]decimal.Decimal{
		expense.Shopping: decimal.NewFromInt(1),
		expense.Bills:    decimal.NewFromInt(1),
		expense.Other:    decimal.NewFromInt(1),
	}, "PKR")

	lines := strings.Split(got, "\n")
	assert.Equal(t, "Bills: 1.00 PKR (33.3%)", lines[0])
	assert.Equal(t, "Other: 1.00 PKR (33.3%)", lines[1])
	assert.Equal(t, "Shopping: 1.00 PKR (33.3%)", lines[2])
}

func Test_OnCategoryBreakdown_ZeroTotalShouldNotDivide(t *testing.T) {
	got := CategoryBreakdown(map[expense.Category]decimal.Decimal{
		expense.Food: decimal.Zero,
	}, "PKR")

	assert.Equal(t, "Food: 0.00 PKR (0.0%)\n\nTotal: 0.00 PKR", got)
}

func Test_OnTrend_ShouldScaleBarsToPeak(t *testing.T) {
	got := Trend(sampleLedger().TotalsByDate(), "PKR")

	want := strings.Join([]string{
		"2024-01-01 700.00 PKR " + strings.Repeat("█", 20),
		"2024-01-02 300.00 PKR " + strings.Repeat("█", 9),
	}, "\n")
	assert.Equal(t, want, got)
}

func Test_OnTrend_ZeroDaysShouldHaveNoBar(t *testing.T) {
	got := Trend([]ledger.DateTotal{
		{Date: day(1), Amount: decimal.Zero},
		{Date: day(2), Amount: decimal.RequireFromString("0.01")},
		{Date: day(3), Amount: decimal.NewFromInt(1000)},
	}, "PKR")

	lines := strings.Split(got, "\n")
	assert.Equal(t, "2024-01-01 0.00 PKR", lines[0])
	assert.Equal(t, "2024-01-02 0.01 PKR █", lines[1])
}

func Test_OnTrend_EmptyShouldRenderNothing(t *testing.T) {
	assert.Empty(t, Trend(nil, "PKR"))
}
