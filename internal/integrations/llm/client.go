package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// DefaultModel модель по умолчанию
const DefaultModel = openai.GPT4oMini

// Options параметры клиента
type Options struct {
	APIKey            string
	BaseURL           string // пусто - официальный API
	Model             string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client клиент chat completion API
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	log     Logger
}

// NewClient создает клиента. Без ключа API клиент создается, но Complete возвращает ErrDisabled
func NewClient(opts Options, log Logger) *Client {
	c := &Client{
		model:   opts.Model,
		timeout: opts.Timeout,
		log:     log,
	}

	if c.model == "" {
		c.model = DefaultModel
	}

	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	if opts.APIKey != "" {
		cfg := openai.DefaultConfig(opts.APIKey)
		if opts.BaseURL != "" {
			cfg.BaseURL = opts.BaseURL
		}
		c.api = openai.NewClientWithConfig(cfg)
	}

	return c
}

// Enabled сообщает, настроен ли ключ API
func (c *Client) Enabled() bool {
	return c.api != nil
}

// Complete отправляет prompt одним пользовательским сообщением и возвращает текст ответа
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.api == nil {
		return "", ErrDisabled
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		c.log.Warn("LLM completion failed after %s: %v", time.Since(start), err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}

	c.log.Info("LLM completion received in %s, model=%s, tokens=%d", time.Since(start), c.model, resp.Usage.TotalTokens)
	return resp.Choices[0].Message.Content, nil
}
