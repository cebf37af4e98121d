package expense

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Shopping      Category = "Shopping"
	Entertainment Category = "Entertainment"
	Bills         Category = "Bills"
	Other         Category = "Other"
)

var Categories = []Category{Food, Transport, Shopping, Entertainment, Bills, Other}

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNegativeAmount  = errors.New("amount must not be negative")
)

// ParseCategory matches name against the category set ignoring case.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownCategory, "%q", name)
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Record struct {
	Date        time.Time
	Category    Category
	Amount      decimal.Decimal
	Description string
}

// NewRecord drops the time of day from date.
func NewRecord(date time.Time, category Category, amount decimal.Decimal, description string) Record {
	return Record{
		Date:        now.With(date).BeginningOfDay(),
		Category:    category,
		Amount:      amount,
		Description: strings.TrimSpace(description),
	}
}

func (r Record) Validate() error {
	if !r.Category.Valid() {
		return errors.Wrapf(ErrUnknownCategory, "%q", r.Category)
	}
	if r.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}
