package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPConfig holds settings for the remote ledger gateway client.
type HTTPConfig struct {
	BaseURL string
	Timeout time.Duration
}

// httpClient talks to a remote ledger gateway exposing the key/value
// contract over JSON/HTTP:
//
//	GET /api/ledger/available          -> {"available": bool}
//	GET /api/ledger/data/{key}         -> {"value": base64} | 404
//	PUT /api/ledger/data/{key}         <- {"value": base64}
//
// The gateway itself is an external collaborator; this client only adapts
// its wire shape to [Client].
type httpClient struct {
	client *resty.Client
}

type availableResponse struct {
	Available bool `json:"available"`
}

type dataEnvelope struct {
	Value []byte `json:"value"`
}

// NewHTTP returns a ledger client for the gateway at cfg.BaseURL.
func NewHTTP(cfg HTTPConfig) *httpClient { //nolint:revive
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpClient{client: cli}
}

func (h *httpClient) IsAvailable(ctx context.Context) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ledger/available")
	if err != nil {
		return false, nil
	}
	if resp.StatusCode() != http.StatusOK {
		return false, nil
	}

	var body availableResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return false, nil
	}
	return body.Available, nil
}

func (h *httpClient) GetData(ctx context.Context, key string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ledger/data/" + key)
	if err != nil {
		return nil, fmt.Errorf("%w: gateway get %q: %w", ErrUnavailable, key, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err = mapGatewayError(resp); err != nil {
		return nil, fmt.Errorf("gateway get %q: %w", key, err)
	}

	var body dataEnvelope
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode gateway value for %q: %w", key, err)
	}
	return body.Value, nil
}

func (h *httpClient) SetData(ctx context.Context, key string, value []byte) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(dataEnvelope{Value: value}).
		Put("/api/ledger/data/" + key)
	if err != nil {
		return fmt.Errorf("%w: gateway put %q: %w", ErrUnavailable, key, err)
	}
	if err = mapGatewayError(resp); err != nil {
		return fmt.Errorf("gateway put %q: %w", key, err)
	}
	return nil
}

func mapGatewayError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	if resp.StatusCode() == http.StatusServiceUnavailable {
		return ErrUnavailable
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
