package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-analyzer/internal/entity/expense"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(date time.Time, cat expense.Category, amount int64, descr string) expense.Record {
	return expense.NewRecord(date, cat, decimal.NewFromInt(amount), descr)
}

func Test_OnEmptyLedger_ShouldReturnEmptyAggregates(t *testing.T) {
	l := New()

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.TotalsByCategory())
	assert.NotNil(t, l.TotalsByCategory())
	assert.Empty(t, l.TotalsByDate())
	assert.NotNil(t, l.TotalsByDate())
	assert.Empty(t, l.Records())
}

func Test_OnAppend_ShouldAggregateByCategoryAndDate(t *testing.T) {
	l := New()
	l.Append(rec(day(2024, 1, 1), expense.Food, 500, "lunch"))
	l.Append(rec(day(2024, 1, 1), expense.Transport, 200, ""))
	l.Append(rec(day(2024, 1, 2), expense.Food, 300, "dinner"))

	assert.False(t, l.IsEmpty())

	byCategory := l.TotalsByCategory()
	require.Len(t, byCategory, 2)
	assert.True(t, decimal.NewFromInt(800).Equal(byCategory[expense.Food]))
	assert.True(t, decimal.NewFromInt(200).Equal(byCategory[expense.Transport]))
	_, ok := byCategory[expense.Shopping]
	assert.False(t, ok)

	byDate := l.TotalsByDate()
	require.Len(t, byDate, 2)
	assert.Equal(t, day(2024, 1, 1), byDate[0].Date)
	assert.True(t, decimal.NewFromInt(700).Equal(byDate[0].Amount))
	assert.Equal(t, day(2024, 1, 2), byDate[1].Date)
	assert.True(t, decimal.NewFromInt(300).Equal(byDate[1].Amount))
}

func Test_OnTotalsByDate_ShouldSortOutOfOrderDates(t *testing.T) {
	l := New()
	l.Append(rec(day(2024, 3, 5), expense.Bills, 10, ""))
	l.Append(rec(day(2023, 12, 31), expense.Bills, 20, ""))
	l.Append(rec(day(2024, 1, 15), expense.Bills, 30, ""))
	l.Append(rec(day(2023, 12, 31), expense.Other, 5, ""))

	byDate := l.TotalsByDate()
	require.Len(t, byDate, 3)
	assert.Equal(t, day(2023, 12, 31), byDate[0].Date)
	assert.True(t, decimal.NewFromInt(25).Equal(byDate[0].Amount))
	assert.Equal(t, day(2024, 1, 15), byDate[1].Date)
	assert.Equal(t, day(2024, 3, 5), byDate[2].Date)
}

func Test_OnTotals_ShouldKeepDecimalPrecision(t *testing.T) {
	l := New()
	l.Append(expense.NewRecord(day(2024, 1, 1), expense.Food, decimal.RequireFromString("0.1"), ""))
	l.Append(expense.NewRecord(day(2024, 1, 1), expense.Food, decimal.RequireFromString("0.2"), ""))

	assert.Equal(t, "0.3", l.TotalsByCategory()[expense.Food].String())
	assert.Equal(t, "0.3", l.TotalsByDate()[0].Amount.String())
}

func Test_OnAppend_ShouldPreserveOrderOfPreviousRecords(t *testing.T) {
	l := New()
	first := rec(day(2024, 1, 2), expense.Food, 1, "first")
	second := rec(day(2024, 1, 1), expense.Bills, 2, "second")

	l.Append(first)
	before := l.Records()
	l.Append(second)
	after := l.Records()

	require.Len(t, after, 2)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, first, after[0])
	assert.Equal(t, second, after[1])
}

func Test_OnRecords_ShouldReturnCopy(t *testing.T) {
	l := New()
	l.Append(rec(day(2024, 1, 1), expense.Food, 1, "original"))

	records := l.Records()
	records[0].Description = "changed"

	assert.Equal(t, "original", l.Records()[0].Description)
}

func Test_OnRandomAppends_AggregatesShouldMatchArithmeticSums(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for round := 0; round < 50; round++ {
		l := New()
		wantByCategory := make(map[expense.Category]decimal.Decimal)
		wantByDate := make(map[time.Time]decimal.Decimal)

		n := rnd.Intn(30)
		for i := 0; i < n; i++ {
			date := day(2024, time.Month(1+rnd.Intn(3)), 1+rnd.Intn(28))
			cat := expense.Categories[rnd.Intn(len(expense.Categories))]
			amount := decimal.New(rnd.Int63n(100000), -2)

			l.Append(expense.NewRecord(date, cat, amount, ""))
			wantByCategory[cat] = wantByCategory[cat].Add(amount)
			wantByDate[date] = wantByDate[date].Add(amount)
		}

		assert.Equal(t, n == 0, l.IsEmpty())
		assert.Equal(t, n, l.Len())

		byCategory := l.TotalsByCategory()
		require.Len(t, byCategory, len(wantByCategory))
		for cat, want := range wantByCategory {
			assert.True(t, want.Equal(byCategory[cat]), "category %s", cat)
		}

		byDate := l.TotalsByDate()
		require.Len(t, byDate, len(wantByDate))
		for i, point := range byDate {
			if i > 0 {
				assert.True(t, byDate[i-1].Date.Before(point.Date), "dates must be strictly ascending")
			}
			assert.True(t, wantByDate[point.Date].Equal(point.Amount), "date %s", point.Date)
		}
	}
}
