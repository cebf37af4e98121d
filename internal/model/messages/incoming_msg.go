package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"max.ks1230/expense-analyzer/internal/model/ledger"
)

const sorryMessage = "Sorry, something wrong happened..."

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string) (string, error)
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
}

// NewService wires the session ledger into the command handlers.
func NewService(tgClient messageSender, l *ledger.Ledger, analyzer analyzer, config config) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(l, analyzer, config),
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text)
	if err != nil {
		_ = s.tgClient.SendMessage(sorryMessage+"\n"+resp, msg.UserID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}
