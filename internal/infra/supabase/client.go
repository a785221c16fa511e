// Package supabase implements the account platform: GoTrue authentication and PostgREST tables.
package supabase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

const (
	serviceName     = "account"
	restPath        = "/rest/v1/"
	authPath        = "/auth/v1/"
	maxResponseSize = 4 << 20

	// codeNoRows is PostgREST's answer to a single-row select that matched nothing.
	codeNoRows = "PGRST116"
	// codeUniqueViolation is PostgreSQL's unique_violation SQLSTATE.
	codeUniqueViolation = "23505"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Tokens  service.TokenSource
	Metrics *metrics.Metrics `optional:"true"`
}

// Options configures a Client.
type Options struct {
	URL        string
	AnonKey    string
	Timeout    time.Duration
	HTTPClient *http.Client

	// Tokens supplies the signed-in user's access token for row-level security.
	Tokens service.TokenSource

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Client is the shared HTTP plumbing for auth and table access.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	tokens     service.TokenSource
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// APIError is a non-2xx answer from the platform.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: status %d code %q: %s", e.Status, e.Code, e.Message)
}

// New builds the client from configuration.
func New(params Params) (*Client, error) {
	cfg := params.Config.Supabase

	return NewClient(Options{
		URL:     cfg.URL,
		AnonKey: cfg.AnonKey,
		Timeout: cfg.Timeout,
		Tokens:  params.Tokens,
		Logger:  params.Logger,
		Metrics: params.Metrics,
	})
}

// NewClient validates options and creates a Client.
func NewClient(opts Options) (*Client, error) {
	if opts.URL == "" {
		return nil, errors.New("supabase URL is required")
	}
	if opts.AnonKey == "" {
		return nil, errors.New("supabase anon key is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimSuffix(opts.URL, "/"),
		anonKey:    opts.AnonKey,
		httpClient: httpClient,
		tokens:     opts.Tokens,
		logger:     logger.With(slog.String("component", "supabase")),
		metrics:    opts.Metrics,
	}, nil
}

// bearer picks the explicit token, then the signed-in user's token, then the anon key.
func (c *Client) bearer(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			return token
		}
	}

	return c.anonKey
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.bearer(accessToken))
	req.Header.Set("Accept", "application/json")
}

// do sends the request. Non-2xx answers come back as *APIError; transport
// failures come back as a network AppError.
func (c *Client) do(req *http.Request, operation string) (_ *http.Response, _ []byte, err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveRemoteCall(serviceName, operation, start, err)
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, domainerrors.NewNetworkError(err, serviceName, operation)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, nil, domainerrors.NewNetworkError(err, serviceName, operation)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, body, parseAPIError(resp.StatusCode, body)
	}

	return resp, body, nil
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	if !gjson.ValidBytes(body) {
		apiErr.Message = strings.TrimSpace(string(body))

		return apiErr
	}

	fields := gjson.GetManyBytes(body, "code", "error_code", "error", "message", "msg", "error_description")
	for _, code := range fields[:3] {
		if code.Type == gjson.String && code.String() != "" {
			apiErr.Code = code.String()

			break
		}
	}
	for _, message := range fields[3:] {
		if message.String() != "" {
			apiErr.Message = message.String()

			break
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}

// toDomainError maps a table-access failure onto the domain taxonomy.
func toDomainError(err error, operation string) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.Code == codeNoRows || apiErr.Status == http.StatusNotAcceptable:
		return domainerrors.ErrNotFound.WithDetails(operation)
	case apiErr.Code == codeUniqueViolation || apiErr.Status == http.StatusConflict:
		return domainerrors.ErrConflict.WithDetails(apiErr.Message)
	case apiErr.Status >= http.StatusInternalServerError:
		return domainerrors.NewNetworkError(apiErr, serviceName, operation)
	default:
		return domainerrors.NewRemoteValidationError(apiErr.Message)
	}
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader, accessToken string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	c.setHeaders(req, accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
