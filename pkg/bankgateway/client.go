/**
 * @description
 * This package provides an HTTP client for a real bank settlement gateway.
 * It satisfies the same confirmation contract as the built-in simulator, so
 * pointing BANK_GATEWAY_URL at a live gateway swaps real settlement calls
 * into the ledger without changing its orchestration.
 *
 * @dependencies
 * - bytes, context, encoding/json, net/http, time: Standard Go libraries.
 */
package bankgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a client for the bank settlement gateway API.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new gateway client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ConfirmationRequest is the payload for a settlement confirmation.
type ConfirmationRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Type     string  `json:"type"` // "deposit" or "withdrawal"
}

// ConfirmationResponse is the gateway's settled confirmation.
type ConfirmationResponse struct {
	Data struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Message   string `json:"message"`
	} `json:"data"`
}

// ErrorResponse represents an error from the gateway API.
type ErrorResponse struct {
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Status string `json:"status"`
	} `json:"errors"`
}

func (e *ErrorResponse) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("bank gateway error: %s - %s", e.Errors[0].Title, e.Errors[0].Detail)
	}
	return "unknown bank gateway error"
}

// Confirm submits one settlement confirmation and waits for it to settle.
func (c *Client) Confirm(ctx context.Context, req ConfirmationRequest) (*ConfirmationResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/confirmations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr ErrorResponse
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && len(apiErr.Errors) > 0 {
			return nil, &apiErr
		}
		return nil, fmt.Errorf("bank gateway returned status %d", resp.StatusCode)
	}

	var confirmation ConfirmationResponse
	if err := json.Unmarshal(raw, &confirmation); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return &confirmation, nil
}
