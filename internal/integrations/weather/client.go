package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент внешнего сервиса погоды
type Client struct {
	baseURL    string
	apiKey     string
	lang       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса погоды
func NewClient(baseURL, apiKey, lang string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		lang:    lang,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetForecast получает прогноз погоды для города
func (c *Client) GetForecast(ctx context.Context, city string) ([]Day, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse url: %v", ErrInternal, err)
	}

	q := u.Query()
	q.Set("data.lang", c.lang)
	q.Set("data.city", city)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "apikey "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Weather forecast fetched for city=%s, days=%d", city, len(result.Result))
	return result.Result, nil
}
