package messages

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/expense-analyzer/internal/entity/expense"
)

const (
	commandParts  = 2
	isoDateLayout = "2006-01-02"
	ruDateLayout  = "02.01.2006"
)

var dateLayouts = []string{isoDateLayout, ruDateLayout}

var (
	// Plain decimal only: no exponent, bounded length.
	amountPattern = regexp.MustCompile(`^-?\d{1,12}([.,]\d{1,4})?$`)
	datePattern   = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}|\d{2}\.\d{2}\.\d{4})$`)

	errMalformedAmount = errors.New("malformed amount")
)

// parseCommand splits "/cmd@bot arg..." into "/cmd" and the rest.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	cmd = split[0]
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	if len(split) == commandParts {
		arg = strings.TrimSpace(split[1])
	}
	return cmd, arg
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range dateLayouts {
		date, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

// looksLikeDate reports whether s has the shape of a date, valid or not.
func looksLikeDate(s string) bool {
	return datePattern.MatchString(s)
}

// parseAmount accepts both "12.50" and "12,50".
func parseAmount(s string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(s) {
		return decimal.Decimal{}, errors.Wrapf(errMalformedAmount, "parse amount %q", s)
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "parse amount")
	}
	return amount, nil
}

func categoryList() string {
	names := make([]string, 0, len(expense.Categories))
	for _, c := range expense.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
