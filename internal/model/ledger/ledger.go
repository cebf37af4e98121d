// Package ledger keeps the expenses of one session in memory.
//
// A Ledger is append-only and preserves insertion order. It is not safe for
// concurrent use: it is owned by the single loop that handles user input.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-analyzer/internal/entity/expense"
)

const dateKeyLayout = "2006-01-02"

type Ledger struct {
	records []expense.Record
}

// DateTotal is a single point of the spending trend.
type DateTotal struct {
	Date   time.Time
	Amount decimal.Decimal
}

func New() *Ledger {
	return &Ledger{records: make([]expense.Record, 0)}
}

// Append stores rec as is, validation is up to the caller.
func (l *Ledger) Append(rec expense.Record) {
	l.records = append(l.records, rec)
}

func (l *Ledger) IsEmpty() bool {
	return len(l.records) == 0
}

func (l *Ledger) Len() int {
	return len(l.records)
}

// Records returns a copy of the records in insertion order.
func (l *Ledger) Records() []expense.Record {
	res := make([]expense.Record, len(l.records))
	copy(res, l.records)
	return res
}

// TotalsByCategory sums amounts per category. Categories without records
// are absent from the result.
func (l *Ledger) TotalsByCategory() map[expense.Category]decimal.Decimal {
	m := make(map[expense.Category]decimal.Decimal)
	for _, rec := range l.records {
		m[rec.Category] = m[rec.Category].Add(rec.Amount)
	}
	return m
}

// TotalsByDate sums amounts per calendar date, ascending by date.
func (l *Ledger) TotalsByDate() []DateTotal {
	index := make(map[string]int)
	res := make([]DateTotal, 0)
	for _, rec := range l.records {
		key := rec.Date.Format(dateKeyLayout)
		i, ok := index[key]
		if !ok {
			index[key] = len(res)
			res = append(res, DateTotal{Date: rec.Date, Amount: rec.Amount})
			continue
		}
		res[i].Amount = res[i].Amount.Add(rec.Amount)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Date.Format(dateKeyLayout) < res[j].Date.Format(dateKeyLayout)
	})
	return res
}
