// Package earth is a client for the EARTH analytics API.
package earth

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/garrettladley/earth/internal/xcontext"
	"github.com/garrettladley/earth/internal/xhttp"
	"github.com/garrettladley/earth/internal/xslog"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8000/api/v1"
	defaultTimeout = 10 * time.Second
)

type Client struct {
	Predict PredictService
	Infra   InfraService

	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	group      singleflight.Group
}

func New(tokenSource oauth2.TokenSource, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:     DefaultBaseURL,
		tokenSource: tokenSource,
		timeout:     defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	base := cfg.base
	if base == nil {
		base = xhttp.NewTransport()
	}

	transport := &earthTransport{
		base:        base,
		tokenSource: cfg.tokenSource,
	}

	timeout := cfg.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: &http.Client{Transport: transport, Timeout: timeout},
		timeout:    timeout,
	}

	c.Predict = &predictService{client: c}
	c.Infra = &infraService{client: c}

	return c
}

type clientConfig struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	timeout     time.Duration
	base        http.RoundTripper
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithTransport replaces the transport beneath the auth layer.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.base = rt }
}

// Coordinates locates a query.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinates) query() url.Values {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.Longitude, 'f', -1, 64))
	return q
}

// get issues a GET and decodes the body into result. Identical requests in
// flight at the same time share one round trip, which runs detached from any
// single caller's cancellation; each caller still stops waiting when its own
// ctx is done. Records are logged to the logger on ctx.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	ch := c.group.DoChan(u, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		var result T
		if err := c.do(callCtx, http.MethodGet, u, &result); err != nil {
			return nil, err
		}
		return &result, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		xslog.FromContext(ctx).DebugContext(ctx, "shared in-flight request", xslog.Endpoint(path))
	}

	result := *res.Val.(*T)
	return &result, nil
}

func (c *Client) do(ctx context.Context, method string, u string, result any) error {
	ctx, requestID := xcontext.EnsureRequestID(ctx)

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	xhttp.SetRequestHeaderRequestID(req, requestID)

	ctx = xslog.WithRequest(ctx, requestID, req.URL.Path)
	logger := xslog.FromContext(ctx)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.DebugContext(ctx, "api request failed", xslog.Error(err))
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.DebugContext(ctx, "api response",
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
		}
	}

	return nil
}

type earthTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*earthTransport)(nil)

func (t *earthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}

	req = req.Clone(req.Context())
	xhttp.SetRequestHeaderBearer(req, token.AccessToken)
	xhttp.SetRequestHeaderAcceptJSON(req)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
