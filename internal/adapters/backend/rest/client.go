// Package rest implements the BackendClient contract over the external
// REST API. Request and response bodies use the bigint-safe JSON
// convention; authentication is a bearer token sourced from the locally
// persisted session record.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/arthanidhi/arthanidhi-cli/internal/codec/bigjson"
	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
	"github.com/arthanidhi/arthanidhi-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   ports.SessionStore
}

var _ ports.BackendClient = (*Client)(nil)

// NewClient builds a REST client rooted at baseURL. The session store may
// be nil when no login surface exists; requests are then unauthenticated.
func NewClient(baseURL string, httpClient *http.Client, sessions ports.SessionStore) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, domain.ErrBaseURLRequired
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		sessions:   sessions,
	}, nil
}

// request performs one HTTP exchange. A nil out skips body decoding; an
// empty 2xx body leaves out untouched, which callers read as absence.
func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := bigjson.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	if c.sessions != nil {
		session, err := c.sessions.Current(ctx)
		switch {
		case err == nil:
			request.Header.Set("Authorization", "Bearer "+session.ID)
		case errors.Is(err, domain.ErrNoSession):
			// No session means an anonymous request, not a failure.
		default:
			return fmt.Errorf("load session for auth header: %w", err)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return errors.New(errorMessage(response, payload))
	}

	if out == nil || len(payload) == 0 {
		return nil
	}

	if err := bigjson.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// errorMessage extracts rejection text: JSON "error" field first, then
// "message", then the raw body, then a generic status line.
func errorMessage(response *http.Response, payload []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}

	if text := strings.TrimSpace(string(payload)); text != "" {
		return text
	}

	return fmt.Sprintf("Request failed: %d %s", response.StatusCode, http.StatusText(response.StatusCode))
}

func (c *Client) GetCallerAccount(ctx context.Context) (*domain.Account, error) {
	var account *domain.Account
	if err := c.request(ctx, http.MethodGet, "/profile", nil, &account); err != nil {
		return nil, err
	}

	return account, nil
}

func (c *Client) SaveCallerAccount(ctx context.Context, account domain.Account) error {
	return c.request(ctx, http.MethodPost, "/profile", account, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, displayName string) error {
	body := map[string]string{"displayName": displayName}
	return c.request(ctx, http.MethodPut, "/profile", body, nil)
}

func (c *Client) GetBalance(ctx context.Context) (domain.Balance, error) {
	var balance domain.Balance
	if err := c.request(ctx, http.MethodGet, "/balance", nil, &balance); err != nil {
		return domain.Balance{}, err
	}

	return balance, nil
}

func (c *Client) GetStatement(ctx context.Context, rng *domain.TransactionRange) ([]domain.Transaction, error) {
	endpoint := "/statement"

	if rng != nil {
		query := url.Values{}
		if rng.StartDate != 0 {
			query.Set("startDate", strconv.FormatInt(rng.StartDate, 10))
		}
		if rng.EndDate != 0 {
			query.Set("endDate", strconv.FormatInt(rng.EndDate, 10))
		}
		if rng.TransactionType != "" {
			query.Set("transactionType", string(rng.TransactionType))
		}
		if encoded := query.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
	}

	var transactions []domain.Transaction
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

func (c *Client) SearchTransactions(ctx context.Context, keyword string) ([]domain.Transaction, error) {
	endpoint := "/transactions/search?keyword=" + url.QueryEscape(keyword)

	var transactions []domain.Transaction
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

func (c *Client) Transfer(ctx context.Context, fromAccount, toAccount string, amount int64, description string) error {
	body := map[string]any{
		"fromAccount": fromAccount,
		"toAccount":   toAccount,
		"amount":      amount,
		"description": description,
	}

	return c.request(ctx, http.MethodPost, "/transfer", body, nil)
}

func (c *Client) GetFinancialHealth(ctx context.Context) (domain.FinancialHealth, error) {
	var health domain.FinancialHealth
	if err := c.request(ctx, http.MethodGet, "/financial-health", nil, &health); err != nil {
		return domain.FinancialHealth{}, err
	}

	return health, nil
}

func (c *Client) GetMarketSummary(ctx context.Context) ([]domain.MarketData, error) {
	var summary []domain.MarketData
	if err := c.request(ctx, http.MethodGet, "/market-summary", nil, &summary); err != nil {
		return nil, err
	}

	return summary, nil
}

func (c *Client) GetMutualFunds(ctx context.Context) ([]domain.MutualFund, error) {
	var funds []domain.MutualFund
	if err := c.request(ctx, http.MethodGet, "/mutual-funds", nil, &funds); err != nil {
		return nil, err
	}

	return funds, nil
}

func (c *Client) GetStocks(ctx context.Context) ([]domain.Stock, error) {
	var stocks []domain.Stock
	if err := c.request(ctx, http.MethodGet, "/stocks", nil, &stocks); err != nil {
		return nil, err
	}

	return stocks, nil
}

func (c *Client) GetSettings(ctx context.Context) (domain.Settings, error) {
	var settings domain.Settings
	if err := c.request(ctx, http.MethodGet, "/settings", nil, &settings); err != nil {
		return domain.Settings{}, err
	}

	return settings, nil
}

func (c *Client) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	return c.request(ctx, http.MethodPut, "/settings", settings, nil)
}

func (c *Client) Deposit(ctx context.Context, amount int64, description string) error {
	body := map[string]any{"amount": amount, "description": description}
	return c.request(ctx, http.MethodPost, "/deposit", body, nil)
}

func (c *Client) Withdraw(ctx context.Context, amount int64, description string) error {
	body := map[string]any{"amount": amount, "description": description}
	return c.request(ctx, http.MethodPost, "/withdraw", body, nil)
}
