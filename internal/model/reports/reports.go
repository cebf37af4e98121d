package reports

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/model/ledger"
)

const (
	dateLayout     = "2006-01-02"
	amountPlaces   = 2
	percentPlaces  = 1
	trendBarWidth  = 20
	trendBarSymbol = "█"
)

var hundred = decimal.NewFromInt(100)

type categoryRecord struct {
	category expense.Category
	amount   decimal.Decimal
}

// Table renders records as right-aligned plain-text columns without row indices.
func Table(records []expense.Record, currency string) string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"Date", "Category", fmt.Sprintf("Amount (%s)", currency), "Description"})
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Date.Format(dateLayout),
			string(rec.Category),
			rec.Amount.StringFixed(amountPlaces),
			rec.Description,
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for i, cell := range row {
			cells = append(cells, padLeft(cell, widths[i]))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// CategoryBreakdown lists category totals with their share of the grand total,
// biggest first.
func CategoryBreakdown(totals map[expense.Category]decimal.Decimal, currency string) string {
	records := make([]categoryRecord, 0, len(totals))
	total := decimal.Zero
	for cat, am := range totals {
		records = append(records, categoryRecord{cat, am})
		total = total.Add(am)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].amount.Equal(records[j].amount) {
			return records[i].category < records[j].category
		}
		return records[i].amount.GreaterThan(records[j].amount)
	})

	res := make([]string, 0, len(records)+2)
	for _, rec := range records {
		res = append(res, fmt.Sprintf("%s: %s %s (%s%%)",
			rec.category, rec.amount.StringFixed(amountPlaces), currency, share(rec.amount, total)))
	}
	res = append(res, "", fmt.Sprintf("Total: %s %s", total.StringFixed(amountPlaces), currency))
	return strings.Join(res, "\n")
}

// Trend renders one line per date with a bar scaled to the biggest day.
func Trend(points []ledger.DateTotal, currency string) string {
	peak := decimal.Zero
	for _, p := range points {
		if p.Amount.GreaterThan(peak) {
			peak = p.Amount
		}
	}

	res := make([]string, 0, len(points))
	for _, p := range points {
		line := fmt.Sprintf("%s %s %s", p.Date.Format(dateLayout), p.Amount.StringFixed(amountPlaces), currency)
		if bar := barLength(p.Amount, peak); bar > 0 {
			line += " " + strings.Repeat(trendBarSymbol, bar)
		}
		res = append(res, line)
	}
	return strings.Join(res, "\n")
}

func share(amount, total decimal.Decimal) string {
	if total.IsZero() {
		return decimal.Zero.StringFixed(percentPlaces)
	}
	return amount.Mul(hundred).Div(total).StringFixed(percentPlaces)
}

func barLength(amount, peak decimal.Decimal) int {
	if !peak.IsPositive() || !amount.IsPositive() {
		return 0
	}
	bar := int(amount.Mul(decimal.NewFromInt(trendBarWidth)).Div(peak).Round(0).IntPart())
	if bar == 0 {
		// keep tiny days visible
		return 1
	}
	return bar
}

func padLeft(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}
