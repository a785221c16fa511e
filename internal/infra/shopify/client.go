// Package shopify implements the commerce platform client against the Storefront GraphQL API.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
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
	"storefront/internal/infra/transport"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	serviceName     = "commerce"
	tokenHeader     = "Shopify-Storefront-Private-Token"
	maxPageSize     = 50
	maxResponseSize = 4 << 20
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// Options configures a Client.
type Options struct {
	StoreDomain string
	Token       string
	APIVersion  string
	PageSize    int
	Timeout     time.Duration

	// Endpoint overrides the URL derived from StoreDomain and APIVersion.
	Endpoint string

	// Transport overrides the HTTP transport. ChromeTLS is ignored when set.
	Transport http.RoundTripper
	ChromeTLS bool

	RequestsPerSecond float64
	Burst             int

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Client talks to the Storefront GraphQL endpoint. It never retries.
type Client struct {
	endpoint   string
	token      string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// New builds the commerce service from configuration.
func New(params Params) (service.CommerceService, error) {
	cfg := params.Config.Commerce

	return NewClient(Options{
		StoreDomain:       cfg.StoreDomain,
		Token:             cfg.StorefrontToken,
		APIVersion:        cfg.APIVersion,
		PageSize:          cfg.PageSize,
		Timeout:           cfg.Timeout,
		ChromeTLS:         cfg.ChromeTLS,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
		Logger:            params.Logger,
		Metrics:           params.Metrics,
	})
}

// NewClient validates options and creates a Client.
func NewClient(opts Options) (*Client, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		if opts.StoreDomain == "" {
			return nil, errors.New("commerce store domain is required")
		}
		endpoint = fmt.Sprintf("https://%s/api/%s/graphql.json", strings.TrimSuffix(opts.StoreDomain, "/"), opts.APIVersion)
	}
	if opts.Token == "" {
		return nil, errors.New("commerce storefront token is required")
	}

	roundTripper := opts.Transport
	if roundTripper == nil && opts.ChromeTLS {
		roundTripper = transport.NewChromeTransport(opts.Timeout)
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint: endpoint,
		token:    opts.Token,
		pageSize: clampPageSize(opts.PageSize),
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: roundTripper,
		},
		limiter: limiter,
		logger:  logger.With(slog.String("component", "shopify")),
		metrics: opts.Metrics,
	}, nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// execute sends one GraphQL operation and decodes its data member into out.
func (c *Client) execute(ctx context.Context, operation, query string, variables map[string]any, out any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveRemoteCall(serviceName, operation, start, err)
		if err != nil {
			c.logger.WarnContext(ctx, "Storefront request failed",
				slog.String("operation", operation),
				slog.Any("error", err),
			)
		}
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return domainerrors.NewNetworkError(err, serviceName, operation)
		}
	}

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return errors.Wrap(err, "marshal graphql request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "create graphql request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(tokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewNetworkError(err, serviceName, operation)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return domainerrors.NewNetworkError(err, serviceName, operation)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domainerrors.NewNetworkError(
			errors.Errorf("status %d: %s", resp.StatusCode, firstErrorMessage(payload)),
			serviceName, operation,
		)
	}

	if !gjson.ValidBytes(payload) {
		return domainerrors.NewNetworkError(errors.New("invalid JSON response"), serviceName, operation)
	}

	if message := firstErrorMessage(payload); message != "" {
		return domainerrors.NewRemoteValidationError(message)
	}

	data := gjson.GetBytes(payload, "data")
	if !data.Exists() || data.Type == gjson.Null {
		return domainerrors.NewNetworkError(errors.New("response has no data"), serviceName, operation)
	}

	if err := json.Unmarshal([]byte(data.Raw), out); err != nil {
		return domainerrors.NewNetworkError(errors.Wrap(err, "decode data"), serviceName, operation)
	}

	return nil
}

// firstErrorMessage returns the first GraphQL error message. The storefront
// answers some HTTP failures with a plain string in "errors".
func firstErrorMessage(payload []byte) string {
	errs := gjson.GetBytes(payload, "errors")
	switch {
	case !errs.Exists():
		return ""
	case errs.IsArray():
		return errs.Get("0.message").String()
	default:
		return errs.String()
	}
}

func (c *Client) resolvePageSize(first int) int {
	if first <= 0 {
		return c.pageSize
	}

	return clampPageSize(first)
}

func clampPageSize(first int) int {
	switch {
	case first <= 0:
		return 20
	case first > maxPageSize:
		return maxPageSize
	default:
		return first
	}
}
