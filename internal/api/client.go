package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client talks to the vault server's import endpoints.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a vault API client. The token is sent as a Bearer
// credential on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// ImportCiphers uploads a personal-vault batch.
func (c *Client) ImportCiphers(ctx context.Context, req *ImportCiphersRequest) error {
	return c.post(ctx, "/ciphers/import", req)
}

// ImportOrganizationCiphers uploads an organization batch.
func (c *Client) ImportOrganizationCiphers(ctx context.Context, orgID string, req *ImportOrganizationCiphersRequest) error {
	return c.post(ctx, "/ciphers/import-organization?organizationId="+orgID, req)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusBadRequest:
		return decodeValidationError(resp.Body)
	case resp.StatusCode >= 500:
		return &ServerError{StatusCode: resp.StatusCode}
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
}

func decodeValidationError(body io.Reader) error {
	raw, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read error response: %w", err)
	}
	var ve ValidationError
	if err := json.Unmarshal(raw, &ve); err != nil || (ve.Message == "" && len(ve.Errors) == 0) {
		return fmt.Errorf("import rejected: %s", string(raw))
	}
	return &ve
}
