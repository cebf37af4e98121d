package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/model/analysis"
	"max.ks1230/expense-analyzer/internal/model/ledger"
	"max.ks1230/expense-analyzer/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am your expense analyzer bot 💰\nTrack your expenses, look at your spending patterns and get smart AI suggestions!"
	loveToTalkMessage     = "I would love to talk about it more! Try /help"
	noExpensesMessage     = "💡 You have no expenses yet. Add some with /expense to get started!"
	okMessageTemplate     = "✅ Expense added: %s %s %s on %s"

	incorrectUsageMessage   = "That is an incorrect command usage. Try: /expense <category> <amount> [date] [description]"
	incorrectExpenseMessage = "Your expense amount is incorrect"
	negativeExpenseMessage  = "Your expense amount must not be negative"
	incorrectDateMessage    = "The date is incorrect. Should be yyyy-mm-dd or dd.mm.yyyy"
	unknownCategoryTemplate = "Unknown category %q. Choose one of: %s"

	distributionHeader = "🧩 Expense distribution by category"
	trendHeader        = "📈 Spending trend over time"
)

const helpMessage = `Commands:
/expense <category> <amount> [date] [description] - add an expense, date is yyyy-mm-dd or dd.mm.yyyy (today by default)
/list - show all recorded expenses
/report - category distribution and spending trend
/analyze - AI analysis of your expenses
/categories - available categories`

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	categoriesCommand = "/categories"
	expenseCommand    = "/expense"
	listCommand       = "/list"
	reportCommand     = "/report"
	analyzeCommand    = "/analyze"
)

type analyzer interface {
	Configured() bool
	Analyze(ctx context.Context, records []expense.Record) analysis.Result
}

type config interface {
	Currency() string
	Location() *time.Location
}

type handler func(ctx context.Context, arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	ledger      *ledger.Ledger
	analyzer    analyzer
	currency    string
	location    *time.Location
	clock       func() time.Time
}

func newHandler(l *ledger.Ledger, analyzer analyzer, config config) *HandlerService {
	res := &HandlerService{
		ledger:   l,
		analyzer: analyzer,
		currency: config.Currency(),
		location: config.Location(),
		clock:    time.Now,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[categoriesCommand] = s.handleCategories
	m[expenseCommand] = s.handleExpense
	m[listCommand] = s.handleList
	m[reportCommand] = s.handleReport
	m[analyzeCommand] = s.handleAnalyze

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string) (string, error) {
	return helloMessage + "\n\n" + helpMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string) (string, error) {
	return categoryList(), nil
}

func (s *HandlerService) handleExpense(_ context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}

	category, err := expense.ParseCategory(args[0])
	if err != nil {
		return fmt.Sprintf(unknownCategoryTemplate, args[0], categoryList()), nil
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return incorrectExpenseMessage, nil
	}

	date, rest := s.clock().In(s.location), args[2:]
	if len(rest) > 0 {
		parsed, ok := parseDate(rest[0], s.location)
		switch {
		case ok:
			date, rest = parsed, rest[1:]
		case looksLikeDate(rest[0]):
			return incorrectDateMessage, nil
		}
	}

	rec := expense.NewRecord(date, category, amount, strings.Join(rest, " "))
	if err = rec.Validate(); err != nil {
		if errors.Is(err, expense.ErrNegativeAmount) {
			return negativeExpenseMessage, nil
		}
		return incorrectUsageMessage, nil
	}

	s.ledger.Append(rec)
	return fmt.Sprintf(okMessageTemplate,
		rec.Category, rec.Amount.StringFixed(2), s.currency, rec.Date.Format(isoDateLayout)), nil
}

func (s *HandlerService) handleList(_ context.Context, _ string) (string, error) {
	if s.ledger.IsEmpty() {
		return noExpensesMessage, nil
	}
	return reports.Table(s.ledger.Records(), s.currency), nil
}

func (s *HandlerService) handleReport(_ context.Context, _ string) (string, error) {
	if s.ledger.IsEmpty() {
		return noExpensesMessage, nil
	}

	res := []string{
		distributionHeader,
		reports.CategoryBreakdown(s.ledger.TotalsByCategory(), s.currency),
		"",
		trendHeader,
		reports.Trend(s.ledger.TotalsByDate(), s.currency),
	}
	if !s.analyzer.Configured() {
		res = append(res, "", analysis.Result{Status: analysis.StatusNotConfigured}.Message())
	}
	return strings.Join(res, "\n"), nil
}

func (s *HandlerService) handleAnalyze(ctx context.Context, _ string) (string, error) {
	if s.ledger.IsEmpty() {
		return noExpensesMessage, nil
	}
	return s.analyzer.Analyze(ctx, s.ledger.Records()).Message(), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string) (string, error) {
	return loveToTalkMessage, nil
}
