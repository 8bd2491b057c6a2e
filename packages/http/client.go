package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"mime/multipart"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/avolkov/reqq/packages/parse"
)

const (
	// DefaultTimeout bounds every request; there is no retry, so the
	// timeout is also the worst-case lifetime of an invocation's
	// network phase.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxIdleConns is the maximum number of idle connections in the pool
	DefaultMaxIdleConns = 100
	// DefaultIdleConnTimeout is how long idle connections stay in the pool
	DefaultIdleConnTimeout = 90 * time.Second
)

// Client wraps net/http with the fixed policy this tool wants: one
// timeout, no retries, headers collapsed last-write-wins. It is built
// once per process and handed to the command dispatch path.
type Client struct {
	httpClient     *http.Client
	timeout        time.Duration
	validateSSL    bool
	proxyURL       string
	defaultHeaders map[string]string
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:        DefaultTimeout,
		validateSSL:    true,
		defaultHeaders: make(map[string]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	transport := &http.Transport{
		MaxIdleConns:    DefaultMaxIdleConns,
		IdleConnTimeout: DefaultIdleConnTimeout,
	}

	if !c.validateSSL {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	if c.proxyURL != "" {
		proxyURL, err := neturl.Parse(c.proxyURL)
		if err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	c.httpClient = &http.Client{
		Transport: transport,
		Timeout:   c.timeout,
	}

	return c
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithValidateSSL enables or disables TLS certificate validation.
func WithValidateSSL(validate bool) ClientOption {
	return func(c *Client) {
		c.validateSSL = validate
	}
}

// WithProxy sets the proxy URL for all requests.
func WithProxy(proxyURL string) ClientOption {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

// WithDefaultHeader sets a header applied to every request unless the
// user overrides it with -H.
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders[key] = value
	}
}

// Do executes the request and reads the full response body into
// memory. Transport failures (DNS, connect, TLS, timeout) come back
// as-is; the caller decides how to report them.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, multipartType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	for k, v := range c.defaultHeaders {
		httpReq.Header.Set(k, v)
	}

	// Ordered user headers collapse into the map here: last occurrence
	// of a name wins, entries that are not sendable HTTP tokens are
	// skipped rather than failing the whole request.
	for _, h := range req.Headers {
		if !parse.ValidHeaderName(h.Name) || !parse.ValidHeaderValue(h.Value) {
			continue
		}
		httpReq.Header.Set(h.Name, h.Value)
	}

	// Body-derived content types are set after user headers so they
	// always win.
	switch req.Body.Kind {
	case BodyRaw:
		httpReq.Header.Set("Content-Type", req.Body.ContentType)
	case BodyFile:
		httpReq.Header.Set("Content-Type", multipartType)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string)
	for k := range httpResp.Header {
		headers[k] = httpResp.Header.Get(k)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    headers,
		Body:       respBody,
	}, nil
}

// encodeBody turns the body variant into a reader. For BodyFile it
// returns the multipart content type (with boundary) alongside.
func encodeBody(b Body) (io.Reader, string, error) {
	switch b.Kind {
	case BodyRaw:
		return bytes.NewReader(b.Data), "", nil
	case BodyFile:
		return buildFileForm(b.Data, b.Filename)
	default:
		return nil, "", nil
	}
}

func buildFileForm(content []byte, filename string) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
