// Package lol is a client for the league of legends web api.
//
// A Client is bound to an api key and a region. Every call builds a
// versioned url for the region that is current at call time, attaches the
// key and decodes the JSON response.
package lol

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/mc10/riot-api/uritemplates"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context/ctxhttp"
)

var (
	// ErrInvalidArgument is returned if invalid argument was passed.
	// Errors returned for bad arguments wrap it, so use errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAPIKeyRequired is returned if riot api server returns HTTP 401.
	ErrAPIKeyRequired error = RiotError{Status: 401}
	// ErrAPILimitExceeded is returned if riot api server returns HTTP 429 Too Many Requests.
	ErrAPILimitExceeded error = RiotError{Status: 429}
	// ErrServiceUnavailable is returned if riot api server returns HTTP 503 Service unavailable.
	ErrServiceUnavailable error = RiotError{Status: 503}
)

// DefaultBaseURL is the scheme and host of the api. {region} is the lower case region code.
const DefaultBaseURL = "https://{region}.api.pvp.net"

// ClientProviderFunc is used to get a http client.
// This must NOT return nil.
type ClientProviderFunc func(context.Context) *http.Client

// Option configures a Client.
type Option func(*Client) error

// WithClientProvider sets the provider of http clients.
func WithClientProvider(p ClientProviderFunc) Option {
	return func(c *Client) error {
		if p != nil {
			c.getClient = p
		}
		return nil
	}
}

// WithBaseURL overrides DefaultBaseURL. The template may contain {region}
// and no other expression. A trailing '/' is dropped.
func WithBaseURL(tpl string) Option {
	return func(c *Client) error {
		t, err := uritemplates.Parse(strings.TrimRight(tpl, "/"))
		if err != nil {
			return errors.Wrapf(ErrInvalidArgument, "base url: %v", err)
		}
		for _, name := range t.Names() {
			if name != "region" {
				return errors.Wrapf(ErrInvalidArgument, "base url: unknown expression {%s}", name)
			}
		}
		c.baseURL = t
		return nil
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) error {
		if l != nil {
			c.log = l
		}
		return nil
	}
}

// Client is a league of legend api fetcher.
// It is safe for concurrent use if the http client is.
type Client struct {
	getClient ClientProviderFunc
	apiKey    string
	baseURL   *uritemplates.Template
	log       logrus.FieldLogger

	mu     sync.RWMutex
	region Region
}

// New creates a new league of legends client.
// An empty region means DefaultRegion.
func New(key, region string, opts ...Option) (*Client, error) {
	if len(key) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "api key is required")
	}
	if region == "" {
		region = string(DefaultRegion)
	}
	r, err := RegionByName(region)
	if err != nil {
		return nil, err
	}

	c := &Client{
		getClient: DefaultClientProvider,
		apiKey:    key,
		baseURL:   uritemplates.MustParse(DefaultBaseURL),
		log:       logrus.StandardLogger(),
		region:    r,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// SetRegion changes the region used by subsequent calls.
// Calls already in flight keep the region they started with.
func (c *Client) SetRegion(region string) error {
	r, err := RegionByName(region)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.region = r
	c.mu.Unlock()
	return nil
}

// Region returns the current region.
func (c *Client) Region() Region {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.region
}

func (c *Client) doRequest(ctx context.Context, method, urlStr string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequest(method, urlStr, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.getClient(ctx)

	if ctx != nil {
		return ctxhttp.Do(ctx, httpClient, req)
	}
	return httpClient.Do(req)
}

// RiotError represents an error returned from riot api server.
//
// Predeclared errors:
//
//	ErrAPIKeyRequired - HTTP 401 Unauthorized
//	ErrAPILimitExceeded - HTTP 429 Too Many Requests
//	ErrServiceUnavailable - HTTP 503 Service Unavailable
type RiotError struct {
	Status int
	// This is provided for debugging.
	Body string
}

func (e RiotError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("riot api returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("riot api returned HTTP %d\nBody: %s", e.Status, e.Body)
}

// TransportError is returned when the request could not be completed:
// network failures and non 2xx responses. Err is a RiotError for the latter.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned when the response body is not the expected JSON.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response of %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error { return e.Err }

// verifyAPIResponse returns nil if no error found.
func verifyAPIResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrAPIKeyRequired
	case http.StatusTooManyRequests:
		return ErrAPILimitExceeded
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	}

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return RiotError{Status: resp.StatusCode, Body: string(data)}
}

// redactKey hides the api key in urls that end up in errors and logs.
func redactKey(u *url.URL) string {
	q := u.Query()
	if q.Get("api_key") == "" {
		return u.String()
	}
	q.Set("api_key", "REDACTED")
	cp := *u
	cp.RawQuery = q.Encode()
	return cp.String()
}
