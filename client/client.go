// Package client is the Go consumer of the payops API: a typed HTTP
// client, a query cache with optimistic decision updates, and the
// decision-panel flow the operations console drives.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/GlebRadaev/payops/internal/domain"
	"github.com/GlebRadaev/payops/internal/dto"
	"github.com/GlebRadaev/payops/pkg/clients"
)

// APIError is a failure reported by the server envelope. Code is one of
// the stable machine-readable codes.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *APIError       `json:"error"`
	Timestamp string          `json:"timestamp"`
}

// APIClient talks to the payops REST API.
type APIClient struct {
	baseURL string
	http    clients.HTTPClientI
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    clients.NewHTTPClient(),
	}
}

func (c *APIClient) SetHTTPClient(client clients.HTTPClientI) {
	c.http = client
}

func (c *APIClient) Payouts(ctx context.Context, filter string) ([]domain.Payout, error) {
	u := c.baseURL + "/payouts"
	if filter != "" && filter != "all" {
		u += "?status=" + url.QueryEscape(filter)
	}

	var payouts []domain.Payout
	if err := c.get(ctx, u, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

func (c *APIClient) PayoutDetail(ctx context.Context, id string) (*domain.PayoutWithDetails, error) {
	var details domain.PayoutWithDetails
	if err := c.get(ctx, c.baseURL+"/payouts/"+url.PathEscape(id), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *APIClient) Snapshot(ctx context.Context) (*domain.FundsSnapshot, error) {
	var snapshot domain.FundsSnapshot
	if err := c.get(ctx, c.baseURL+"/payouts/snapshot", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *APIClient) CreateDecision(ctx context.Context, payoutID string, req dto.DecisionRequestDTO) (*domain.PayoutDecision, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("can't marshal decision request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, respBody, _, err := c.http.Post(ctx, c.baseURL+"/decisions/"+url.PathEscape(payoutID), headers, body)
	if err != nil {
		return nil, fmt.Errorf("decision request failed: %w", err)
	}

	var decision domain.PayoutDecision
	if err := decode(statusCode, respBody, &decision); err != nil {
		return nil, err
	}
	return &decision, nil
}

func (c *APIClient) get(ctx context.Context, url string, out any) error {
	statusCode, respBody, _, err := c.http.Get(ctx, url, http.Header{})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return decode(statusCode, respBody, out)
}

func decode(statusCode int, body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("can't decode response (status %d): %w", statusCode, err)
	}
	if !env.Success {
		if env.Error != nil {
			return env.Error
		}
		return fmt.Errorf("request failed with status %d", statusCode)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("can't decode response data: %w", err)
	}
	return nil
}
