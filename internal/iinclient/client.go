package iinclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"iinreg_backend/internal/logger"
	"iinreg_backend/internal/services/dto"
)

const (
	personPath  = "/api/v1/person/"
	addressPath = "/api/v1/address/"

	apiKeyHeader = "X-API-KEY"
)

var ErrUpstream = errors.New("iin provider request failed")

// Client - клиент внешнего сервиса проверки ИИН.
// Данные по человеку собираются из двух последовательных вызовов:
// /person/ и /address/; поля второго ответа перекрывают поля первого.
type Client struct {
	baseURL    string
	apiKey     string
	maxRetries int
	httpClient *http.Client
}

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchPerson запрашивает персональные данные и адрес по ИИН.
// Оба вызова должны завершиться успешно, иначе возвращается ErrUpstream.
func (c *Client) FetchPerson(ctx context.Context, iin string) (*dto.Person, error) {
	var person dto.Person

	if err := c.post(ctx, personPath, iin, &person); err != nil {
		return nil, err
	}
	// Декодируем ответ /address/ в ту же структуру: присутствующие в JSON
	// поля перезаписываются, отсутствующие остаются от /person/
	if err := c.post(ctx, addressPath, iin, &person); err != nil {
		return nil, err
	}

	return &person, nil
}

// post выполняет один вызов с ограниченным бюджетом ретраев.
// Транспортные ошибки и 5xx ретраятся, 4xx - терминальные.
func (c *Client) post(ctx context.Context, path, iin string, out *dto.Person) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrUpstream, ctx.Err())
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
			logger.CtxWarn(ctx, "Retrying iin provider call", "path", path, "attempt", attempt)
		}

		retryable, err := c.doOnce(ctx, path, iin, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	return lastErr
}

func (c *Client) doOnce(ctx context.Context, path, iin string, out *dto.Person) (retryable bool, err error) {
	body, err := json.Marshal(map[string]string{"iin": iin})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body)
		return true, fmt.Errorf("%w: %s returned %d", ErrUpstream, path, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, resp.Body)
		return false, fmt.Errorf("%w: %s returned %d", ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("%w: decode %s response: %v", ErrUpstream, path, err)
	}
	return false, nil
}
