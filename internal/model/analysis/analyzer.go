package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/logger"
	"max.ks1230/expense-analyzer/internal/model/reports"
)

const promptTemplate = `Analyze this expense data and provide:
1. Spending patterns
2. Overspending categories
3. Saving tips
4. Financial health summary

Data:
%s`

const (
	successMessage       = "✅ Analysis complete!"
	notConfiguredMessage = "⚠️ GROQ_API_KEY is not set. Add it to the environment or the .env file to enable analysis."
	failedMessagePrefix  = "❌ Error: "
)

var ErrNotConfigured = errors.New("analysis api key is not configured")

type Status int

const (
	StatusSuccess Status = iota
	StatusNotConfigured
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotConfigured:
		return "not_configured"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the outcome of one analysis request. Text is set on success,
// Cause otherwise.
type Result struct {
	Status Status
	Text   string
	Cause  error
}

func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Message is what the user gets to see.
func (r Result) Message() string {
	switch r.Status {
	case StatusSuccess:
		return successMessage + "\n\n" + r.Text
	case StatusNotConfigured:
		return notConfiguredMessage
	}
	cause := "unknown error"
	if r.Cause != nil {
		cause = r.Cause.Error()
	}
	return failedMessagePrefix + cause
}

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type keyConfig interface {
	ApiKey() string
}

type appConfig interface {
	Currency() string
}

type Analyzer struct {
	client     completer
	configured bool
	currency   string
}

func NewAnalyzer(keys keyConfig, app appConfig, client completer) *Analyzer {
	return &Analyzer{
		client:     client,
		configured: keys.ApiKey() != "",
		currency:   app.Currency(),
	}
}

// Configured reports whether an api key is available. Without it Analyze
// never reaches the network.
func (a *Analyzer) Configured() bool {
	return a.configured
}

func BuildPrompt(table string) string {
	return fmt.Sprintf(promptTemplate, table)
}

func (a *Analyzer) Analyze(ctx context.Context, records []expense.Record) (res Result) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "analyzeExpenses")
	defer span.Finish()
	span.SetTag("records", len(records))

	logger.Info("Analyze - start", zap.Int("records", len(records)))
	defer func() {
		observeAnalysis(res.Status)
		if !res.OK() {
			ext.Error.Set(span, true)
		}
		logger.Info("Analyze - end", zap.Stringer("status", res.Status))
	}()

	if !a.configured {
		logger.Warn("analysis requested without api key")
		return Result{Status: StatusNotConfigured, Cause: ErrNotConfigured}
	}

	prompt := BuildPrompt(reports.Table(records, a.currency))

	start := time.Now()
	text, err := a.client.Complete(ctx, prompt)
	observeLatency(time.Since(start))
	if err != nil {
		logger.Error("analysis request failed", zap.Error(err))
		return Result{Status: StatusFailed, Cause: errors.Wrap(err, "analyze expenses")}
	}

	return Result{Status: StatusSuccess, Text: text}
}
