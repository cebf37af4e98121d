package tg

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/logger"
	"max.ks1230/expense-analyzer/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	updateTimeout       = 60
	maxMessageLength    = 4096
)

type config interface {
	Token() string
	Owner() int64
}

type Client struct {
	client *tgbotapi.BotAPI
	owner  int64
}

func New(cfg config) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(cfg.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client: client, owner: cfg.Owner()}, nil
}

func (c *Client) SendMessage(text string, userID int64) error {
	for _, chunk := range splitMessage(text, maxMessageLength) {
		_, err := c.client.Send(tgbotapi.NewMessage(userID, chunk))
		if err != nil {
			return errors.Wrap(err, "client.Send")
		}
	}
	return nil
}

// ListenUpdates handles updates one by one until ctx is done.
func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updateTimeout

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages", zap.Int64("owner", c.owner))

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel *messages.Service) {
	msg, ok := incomingMessage(c.owner, update)
	if !ok {
		return
	}

	logger.Info(msg.Text, zap.String("user", update.Message.From.UserName))

	err := msgModel.HandleIncomingMessage(ctx, msg)
	if err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}

// incomingMessage extracts the message to handle from update. Updates without
// a sender and messages from anyone but the owner are dropped.
func incomingMessage(owner int64, update tgbotapi.Update) (messages.Message, bool) {
	if update.Message == nil || update.Message.From == nil {
		return messages.Message{}, false
	}
	from := update.Message.From
	if !allowed(owner, from.ID) {
		logger.Warn("ignoring message from foreign user", zap.Int64("userID", from.ID), zap.String("user", from.UserName))
		return messages.Message{}, false
	}
	return messages.Message{
		Text:   update.Message.Text,
		UserID: from.ID,
	}, true
}

func allowed(owner, userID int64) bool {
	return owner == 0 || owner == userID
}

// splitMessage cuts text into chunks of at most limit runes, preferring line breaks.
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/limit+1)
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > 0; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
