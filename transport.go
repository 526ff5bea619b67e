package crediflow

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request is the assembled outbound call handed to a Transport. URL is the
// path plus query relative to the transport's base; Body carries a JSON
// payload, Form carries form-encoded parameters. At most one of the two is
// set, keyed by ContentType.
type Request struct {
	Method      string
	URL         string
	ContentType ContentType
	Header      http.Header
	Body        []byte
	Form        string
}

// Response is the raw reply from a Transport. Any HTTP status counts as a
// response; interpretation of the status is the executor's job.
type Response struct {
	Status int
	Body   []byte
}

// Transport performs the single outbound HTTP exchange for the executor.
// Implementations own every transport-level concern: TLS, connection
// pooling, timeouts, retries. The executor adds none of its own.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// HTTPTransport is the default net/http-backed Transport. It joins request
// paths onto a fixed base URL and otherwise passes everything through.
type HTTPTransport struct {
	base      *url.URL
	client    *http.Client
	userAgent string
}

// NewHTTPTransport creates a transport rooted at baseURL, typically the API
// prefix of one backend tenant, e.g. "https://demo.crediflow.dev/api".
func NewHTTPTransport(baseURL string) (*HTTPTransport, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, WrapError(CodeConfiguration, err, fmt.Sprintf("invalid base URL %q", baseURL))
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, Errorf(CodeConfiguration, "base URL %q must be absolute", baseURL)
	}
	return &HTTPTransport{
		base:   base,
		client: http.DefaultClient,
	}, nil
}

// WithHTTPClient sets the underlying *http.Client. Use this to configure
// timeouts, proxies or TLS. It returns the transport for chaining.
func (t *HTTPTransport) WithHTTPClient(client *http.Client) *HTTPTransport {
	t.client = client
	return t
}

// WithUserAgent sets the User-Agent header for outgoing requests.
func (t *HTTPTransport) WithUserAgent(ua string) *HTTPTransport {
	t.userAgent = ua
	return t
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	target := strings.TrimRight(t.base.String(), "/") + "/" + strings.TrimLeft(req.URL, "/")

	var body io.Reader
	switch {
	case len(req.Body) > 0:
		body = strings.NewReader(string(req.Body))
	case req.Form != "":
		body = strings.NewReader(req.Form)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, WrapError(CodeTransport, err, "cannot build HTTP request")
	}
	httpReq.Header.Set("Content-Type", string(req.ContentType))
	if t.userAgent != "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	httpRes, err := t.client.Do(httpReq)
	if err != nil {
		return nil, WrapError(CodeTransport, err, fmt.Sprintf("%s %s failed", req.Method, target))
	}
	defer httpRes.Body.Close()

	data, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return nil, WrapError(CodeTransport, err, fmt.Sprintf("%s %s: reading response body failed", req.Method, target))
	}

	return &Response{Status: httpRes.StatusCode, Body: data}, nil
}
