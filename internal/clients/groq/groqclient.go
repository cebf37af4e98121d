package groq

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/logger"
)

const (
	// Groq serves an OpenAI compatible API under this prefix.
	openaiPrefix = "/openai/v1"

	maxResponseBytes = 1 << 20
)

type config interface {
	ApiKey() string
	Model() string
	BaseURL() string
	TimeoutSeconds() int64
}

type Client struct {
	model  string
	client *openai.Client
}

func New(cfg config) *Client {
	clientCfg := openai.DefaultConfig(cfg.ApiKey())
	clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL(), "/") + openaiPrefix
	clientCfg.HTTPClient = &limitedDoer{
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds()) * time.Second},
		limit:  maxResponseBytes,
	}

	return &Client{
		model:  cfg.Model(),
		client: openai.NewClientWithConfig(clientCfg),
	}
}

// Complete sends prompt as a single user message and returns the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "calling groq")
	}
	logger.Debug("new response from groq", zap.String("id", res.ID), zap.Int("choices", len(res.Choices)))

	if len(res.Choices) == 0 {
		return "", errors.New("groq api returned no choices")
	}
	return res.Choices[0].Message.Content, nil
}

// limitedDoer caps every response body at limit bytes. A longer body is
// truncated and fails to decode.
type limitedDoer struct {
	client *http.Client
	limit  int64
}

func (d *limitedDoer) Do(req *http.Request) (*http.Response, error) {
	res, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	res.Body = limitedBody{Reader: io.LimitReader(res.Body, d.limit), Closer: res.Body}
	return res, nil
}

type limitedBody struct {
	io.Reader
	io.Closer
}
