package apiclient

import (
	"net/http"
	"net/url"
	"strings"
)

// Recognized content types.
const (
	ContentTypeJSON      = "application/json"
	ContentTypeForm      = "application/x-www-form-urlencoded"
	ContentTypeMultipart = "multipart/form-data"
	ContentTypeText      = "text/plain"
	ContentTypeHTML      = "text/html"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters. Parameters are encoded
// onto the URL in the order they appear here, unlike url.Values which
// sorts keys.
type Query []Param

// Add appends a parameter and returns the extended query.
func (q Query) Add(key, value string) Query {
	return append(q, Param{Key: key, Value: value})
}

// Encode percent-encodes the parameters, preserving their order.
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Request describes one outbound API call.
type Request struct {
	// Method is the HTTP method. Defaults to GET.
	Method string
	// Endpoint is joined onto the client's BaseURL. An absolute http(s)
	// URL bypasses the base.
	Endpoint string
	// ContentType is the per-request content type. Defaults to
	// application/json; the client-level default, if set, wins.
	ContentType string
	// Accept is the per-request accept value. Defaults to
	// application/json; the client-level default, if set, wins.
	Accept string
	// Headers are extra headers merged last (last-write-wins).
	Headers map[string]string
	// Query parameters, appended in order.
	Query Query
	// Body is the request body, serialized according to the effective
	// Content-Type header. Ignored for GET and HEAD.
	Body any
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
}

// Descriptor is a fully-resolved, transport-ready representation of one
// HTTP call. It is built fresh per request and holds no shared state.
type Descriptor struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Build resolves a Request into a transport-ready Descriptor without
// performing any I/O. Given identical config and arguments the result is
// deterministic.
func (c *Client) Build(req Request) (*Descriptor, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	accept := req.Accept
	if accept == "" {
		accept = ContentTypeJSON
	}

	// Header precedence: per-call negotiation values, then auth, then
	// client-level defaults, then per-request extras. Client defaults
	// deliberately override the per-call values; per-request extras
	// override everything.
	headers := map[string]string{}
	setHeader(headers, "Content-Type", contentType)
	setHeader(headers, "Accept", accept)

	auth := c.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	for k, v := range auth.Headers() {
		setHeader(headers, k, v)
	}

	if c.config.ContentType != "" {
		setHeader(headers, "Content-Type", c.config.ContentType)
	}
	if c.config.Accept != "" {
		setHeader(headers, "Accept", c.config.Accept)
	}
	for k, v := range c.config.Headers {
		setHeader(headers, k, v)
	}
	for k, v := range req.Headers {
		setHeader(headers, k, v)
	}

	u, err := c.resolveURL(req.Endpoint)
	if err != nil {
		return nil, err
	}
	if len(req.Query) > 0 {
		encoded := req.Query.Encode()
		if u.RawQuery != "" {
			u.RawQuery += "&" + encoded
		} else {
			u.RawQuery = encoded
		}
	}

	desc := &Descriptor{
		Method:  method,
		URL:     u.String(),
		Headers: headers,
	}

	// GET and HEAD never carry a body, regardless of content type.
	if req.Body != nil && method != http.MethodGet && method != http.MethodHead {
		data, bodyType, err := encodeBody(headers["Content-Type"], req.Body)
		if err != nil {
			return nil, err
		}
		desc.Body = data
		if bodyType != "" {
			setHeader(headers, "Content-Type", bodyType)
		}
	}

	return desc, nil
}

// resolveURL joins the base URL and endpoint, requiring an absolute
// http(s) result.
func (c *Client) resolveURL(endpoint string) (*url.URL, error) {
	raw := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		base := strings.TrimRight(c.config.BaseURL, "/")
		if endpoint == "" {
			raw = base
		} else {
			raw = base + "/" + strings.TrimLeft(endpoint, "/")
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, NewInvalidURLError(raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, NewInvalidURLError(raw, nil)
	}
	return u, nil
}

// setHeader stores a header under its canonical name so that overlays
// behave case-insensitively.
func setHeader(h map[string]string, key, value string) {
	h[http.CanonicalHeaderKey(key)] = value
}
