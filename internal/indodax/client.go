package indodax

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var log = logrus.WithField("component", "indodax")

const defaultRecvWindowMs = 5000

// Client speaks the private trade API. It holds an immutable credential
// pair and imposes no shared mutable state beyond the rate limiter, so
// operations may be called concurrently.
type Client struct {
	apiKey      string
	secretKey   string
	endpoint    string
	recvWindow  int64
	orderPrefix string
	minOrderIDR decimal.Decimal
	httpClient  *http.Client
	limiter     *rate.Limiter
	now         func() time.Time
}

type Options struct {
	APIKey         string
	SecretKey      string
	Endpoint       string
	RecvWindowMs   int64
	HTTPTimeoutSec int64
	RequestsPerSec float64 // 0 disables the rate governor
	RequestBurst   int
	OrderPrefix    string          // prefix for generated client order and request ids
	MinOrderIDR    decimal.Decimal // client-side floor for rupiah order amounts
}

// New validates the credential pair up front; a missing key is a
// programmer error, not something to discover on the first signed call.
func New(opts Options) (*Client, error) {
	if opts.APIKey == "" || opts.SecretKey == "" {
		return nil, errors.New("indodax: api key and secret key are required")
	}
	if opts.Endpoint == "" {
		return nil, errors.New("indodax: endpoint is required")
	}
	timeout := 15 * time.Second
	if opts.HTTPTimeoutSec > 0 {
		timeout = time.Duration(opts.HTTPTimeoutSec) * time.Second
	}
	recvWindow := opts.RecvWindowMs
	if recvWindow <= 0 {
		recvWindow = defaultRecvWindowMs
	}
	var limiter *rate.Limiter
	if opts.RequestsPerSec > 0 {
		burst := opts.RequestBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSec), burst)
	}
	prefix := strings.ToLower(strings.TrimSpace(opts.OrderPrefix))
	if prefix == "" {
		prefix = "indodax"
	}
	return &Client{
		apiKey:      opts.APIKey,
		secretKey:   opts.SecretKey,
		endpoint:    strings.TrimRight(opts.Endpoint, "/"),
		recvWindow:  recvWindow,
		orderPrefix: prefix,
		minOrderIDR: opts.MinOrderIDR,
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     limiter,
		now:         time.Now,
	}, nil
}

type envelope struct {
	Success   int             `json:"success"`
	Return    json.RawMessage `json:"return"`
	Error     string          `json:"error"`
	ErrorCode string          `json:"error_code"`
}

// call signs and dispatches one TAPI request and decodes the return
// object into out. Single attempt: retries are the caller's decision,
// ideally with the same client order or request id.
func (c *Client) call(ctx context.Context, method string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return TransportError{Method: method, Err: err}
		}
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("method", method)
	params.Set("timestamp", strconv.FormatInt(c.now().UnixMilli(), 10))
	if params.Get("recvWindow") == "" {
		params.Set("recvWindow", strconv.FormatInt(c.recvWindow, 10))
	}
	payload, signature := Sign(params, c.secretKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(payload))
	if err != nil {
		return TransportError{Method: method, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Key", c.apiKey)
	req.Header.Set("Sign", signature)

	log.WithField("method", method).Debug("tapi request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return TransportError{Method: method, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return TransportError{
			Method: method,
			Err:    fmt.Errorf("http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return TransportError{Method: method, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if env.Success != 1 {
		msg := env.Error
		if msg == "" {
			msg = "request rejected with no error message"
		}
		return newAPIError(method, msg, env.ErrorCode)
	}
	if out != nil && len(env.Return) > 0 {
		if err := json.Unmarshal(env.Return, out); err != nil {
			return TransportError{Method: method, Err: fmt.Errorf("decode return object: %w", err)}
		}
	}
	return nil
}

// newClientOrderID derives a timestamp-based id with the configured
// instance prefix.
func (c *Client) newClientOrderID() string {
	return c.orderPrefix + "-" + strconv.FormatInt(c.now().UnixMilli(), 10)
}
