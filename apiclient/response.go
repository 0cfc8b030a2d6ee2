package apiclient

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Response is the decoded result of one API call. It is ephemeral: the
// client holds no reference to it after returning.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// ContentType is the response's declared content type.
	ContentType string
	// Body is the raw response body.
	Body []byte
	// Data is the decoded body: a JSON value (map, slice or scalar) for
	// JSON responses, a string for text responses.
	Data any
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Text returns the body as a string.
func (r *Response) Text() string {
	if s, ok := r.Data.(string); ok {
		return s
	}
	return string(r.Body)
}

// decodeResponse normalizes a 2xx response body according to its
// declared content type.
func decodeResponse(statusCode int, header http.Header, body []byte) (*Response, error) {
	contentType := header.Get("Content-Type")
	resp := &Response{
		StatusCode:  statusCode,
		Headers:     flattenHeaders(header),
		ContentType: contentType,
		Body:        body,
	}

	switch {
	case strings.Contains(contentType, ContentTypeJSON):
		if len(body) > 0 {
			var data any
			if err := json.Unmarshal(body, &data); err != nil {
				return nil, NewDecodeError(err)
			}
			resp.Data = data
		}
	case strings.Contains(contentType, ContentTypeText), strings.Contains(contentType, ContentTypeHTML):
		resp.Data = string(body)
	default:
		return nil, NewUnsupportedContentTypeError(contentType)
	}

	return resp, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
