package api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/config"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
)

// Общий HTTP-клиент для адаптеров источников котировок

const defaultUserAgent = "btc-ticker-service/1.0 (+https://github.com/NastyaGoryachaya/btc-ticker-service)"

// maxBodySize — ответы источников маленькие, больше не читаем
const maxBodySize = 1 << 20

type client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	now        func() time.Time
}

func newClient(cfg config.SourceConfig) client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return client{
		baseURL:   cfg.BaseURL,
		userAgent: ua,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// getJSON — GET baseURL+path?query и разбор тела в out.
// Сеть и статус не 2xx -> ErrSourceUnavailable, невалидный JSON -> ErrSourceSchemaInvalid
func (c *client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", derrors.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return fmt.Errorf("%w: status %s", derrors.ErrSourceUnavailable, resp.Status)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", derrors.ErrSourceSchemaInvalid, err)
	}
	return nil
}

// parsePrice — строковая цена биржи в положительное число
func parsePrice(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is missing", derrors.ErrSourceSchemaInvalid, field)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number: %q", derrors.ErrSourceSchemaInvalid, field, raw)
	}
	return checkPrice(field, v)
}

func checkPrice(field string, v float64) (float64, error) {
	if !domain.IsValidPrice(v) {
		return 0, fmt.Errorf("%w: %s must be positive, got %v", derrors.ErrSourceSchemaInvalid, field, v)
	}
	return v, nil
}

// parsePercent — процент изменения может быть и отрицательным, и нулевым
func parsePercent(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number: %q", derrors.ErrSourceSchemaInvalid, field, raw)
	}
	return checkPercent(field, v)
}

// checkPercent — ParseFloat принимает "NaN" и "Inf", источнику такое не прощаем
func checkPercent(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be finite, got %v", derrors.ErrSourceSchemaInvalid, field, v)
	}
	return v, nil
}
