package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/colwyn/draftstats/internal/core"
)

// APIError is returned when the provider returns a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// HTTPTransport performs GET requests against the 17Lands API with bounded
// connect/read timeouts. Retries automatically on HTTP 5xx or 429 responses
// with exponential back-off.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewHTTPTransport creates the production transport from config.
func NewHTTPTransport(cfg core.Config, log zerolog.Logger) *HTTPTransport {
	return &HTTPTransport{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
			},
		},
		log: log.With().Str("component", "api").Logger(),
	}
}

const maxRetries = 3

// Get performs a GET request and returns the raw response body.
func (t *HTTPTransport) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	urlStr := t.baseURL + path
	if len(params) > 0 {
		urlStr = fmt.Sprintf("%s?%s", urlStr, params.Encode())
	}

	t.log.Debug().Str("url", urlStr).Msg("GET")

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := t.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < maxRetries && ctx.Err() == nil {
				wait := time.Duration(1<<(attempt-1)) * time.Second
				t.log.Debug().Int("attempt", attempt).Dur("wait", wait).Err(err).
					Msg("connection error; retrying")
				if sleepCtx(ctx, wait) {
					continue
				}
			}
			return nil, fmt.Errorf("request failed: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		// Retryable statuses
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			lastErr = &APIError{StatusCode: resp.StatusCode, Message: string(body)}
			if attempt < maxRetries {
				wait := time.Duration(1<<(attempt-1)) * time.Second
				if resp.StatusCode == http.StatusTooManyRequests {
					if ra := resp.Header.Get("Retry-After"); ra != "" {
						if secs, err := strconv.Atoi(ra); err == nil {
							wait = time.Duration(secs) * time.Second
						}
					}
				}
				t.log.Debug().Int("attempt", attempt).Int("status", resp.StatusCode).
					Dur("wait", wait).Msg("retryable error; retrying")
				if sleepCtx(ctx, wait) {
					continue
				}
			}
			return nil, lastErr
		}

		if resp.StatusCode >= 400 {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
		}

		t.log.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("response")
		return body, nil
	}

	return nil, lastErr
}

// sleepCtx waits for d or until ctx is done. Reports whether the full wait
// elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Client exposes the typed query surface of the 17Lands API on top of a
// Transport.
type Client struct {
	transport Transport
	log       zerolog.Logger
}

// NewClient creates a typed client over the given transport.
func NewClient(transport Transport, log zerolog.Logger) *Client {
	return &Client{
		transport: transport,
		log:       log.With().Str("component", "17lands").Logger(),
	}
}

// FetchFilters downloads the filter metadata.
func (c *Client) FetchFilters(ctx context.Context) (Filters, error) {
	c.log.Info().Msg("fetching filters")
	body, err := c.transport.Get(ctx, core.FiltersPath, nil)
	if err != nil {
		return Filters{}, err
	}
	var filters Filters
	if err := json.Unmarshal(body, &filters); err != nil {
		return Filters{}, fmt.Errorf("failed to parse filters response: %w", err)
	}
	return filters, nil
}

// FetchColorRatings downloads the aggregate color statistics for an
// (expansion, event type) pair over the given date range.
func (c *Client) FetchColorRatings(ctx context.Context, expansion, eventType string, start, end time.Time, combineSplash bool) ([]ColorRating, error) {
	c.log.Info().Str("expansion", expansion).Str("event_type", eventType).
		Str("start", core.FormatDate(start)).Str("end", core.FormatDate(end)).
		Msg("fetching color ratings")

	params := url.Values{}
	params.Set("expansion", expansion)
	params.Set("event_type", eventType)
	params.Set("start_date", core.FormatDate(start))
	params.Set("end_date", core.FormatDate(end))
	params.Set("combine_splash", strconv.FormatBool(combineSplash))

	body, err := c.transport.Get(ctx, core.ColorRatingsPath, params)
	if err != nil {
		return nil, err
	}
	var rows []ColorRating
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse color ratings response: %w", err)
	}
	return rows, nil
}

// FetchCardRatings downloads the aggregate card statistics for an
// (expansion, event type) pair over the given date range. colors restricts
// the stats to decks of that color filter when non-empty.
func (c *Client) FetchCardRatings(ctx context.Context, expansion, eventType string, start, end time.Time, colors string) ([]CardRating, error) {
	c.log.Info().Str("expansion", expansion).Str("event_type", eventType).
		Str("start", core.FormatDate(start)).Str("end", core.FormatDate(end)).
		Msg("fetching card ratings")

	params := url.Values{}
	params.Set("expansion", expansion)
	params.Set("format", eventType)
	params.Set("start_date", core.FormatDate(start))
	params.Set("end_date", core.FormatDate(end))
	if colors != "" {
		params.Set("colors", colors)
	}

	body, err := c.transport.Get(ctx, core.CardRatingsPath, params)
	if err != nil {
		return nil, err
	}
	var rows []CardRating
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse card ratings response: %w", err)
	}
	return rows, nil
}

// FetchCardEvaluationMetagame downloads the card evaluation metagame table.
// colors and rarity are optional filters.
func (c *Client) FetchCardEvaluationMetagame(ctx context.Context, expansion, eventType, colors, rarity string, start, end time.Time) ([]CardEvaluationRow, error) {
	c.log.Info().Str("expansion", expansion).Str("event_type", eventType).
		Msg("fetching card evaluation metagame")

	params := url.Values{}
	params.Set("expansion", expansion)
	params.Set("format", eventType)
	params.Set("start_date", core.FormatDate(start))
	params.Set("end_date", core.FormatDate(end))
	if colors != "" {
		params.Set("colors", colors)
	}
	if rarity != "" {
		params.Set("rarity", rarity)
	}

	body, err := c.transport.Get(ctx, core.CardMetagamePath, params)
	if err != nil {
		return nil, err
	}
	var rows []CardEvaluationRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse card evaluation metagame response: %w", err)
	}
	return rows, nil
}

// FetchPlayDraw downloads the global play/draw advantage table.
func (c *Client) FetchPlayDraw(ctx context.Context) ([]PlayDrawRow, error) {
	c.log.Info().Msg("fetching play/draw advantage")
	body, err := c.transport.Get(ctx, core.PlayDrawPath, nil)
	if err != nil {
		return nil, err
	}
	var rows []PlayDrawRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse play/draw response: %w", err)
	}
	return rows, nil
}
