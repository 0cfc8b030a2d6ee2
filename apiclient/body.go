package apiclient

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strings"
)

// encodeBody serializes a body value according to the effective content
// type. It returns the serialized bytes and, for multipart bodies, the
// replacement Content-Type header carrying the boundary.
func encodeBody(contentType string, body any) ([]byte, string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	switch mediaType {
	case ContentTypeJSON:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", NewDecodeError(fmt.Errorf("encode json body: %w", err))
		}
		return data, "", nil

	case ContentTypeForm:
		data, err := encodeForm(body)
		if err != nil {
			return nil, "", err
		}
		return data, "", nil

	case ContentTypeMultipart:
		return encodeMultipart(body)

	default:
		return nil, "", NewUnsupportedContentTypeError(contentType)
	}
}

// encodeForm percent-encodes a form body. Non-string values are coerced
// to their string representation.
func encodeForm(body any) ([]byte, error) {
	switch v := body.(type) {
	case url.Values:
		return []byte(v.Encode()), nil
	case Query:
		return []byte(v.Encode()), nil
	case map[string]string:
		values := url.Values{}
		for k, val := range v {
			values.Set(k, val)
		}
		return []byte(values.Encode()), nil
	case map[string]any:
		values := url.Values{}
		for k, val := range v {
			values.Set(k, fmt.Sprint(val))
		}
		return []byte(values.Encode()), nil
	default:
		return nil, NewDecodeError(fmt.Errorf("form body must be a map, Query or url.Values, got %T", body))
	}
}

// encodeMultipart builds a multipart/form-data body. Map entries with
// []byte values become binary parts; everything else becomes a text part.
func encodeMultipart(body any) ([]byte, string, error) {
	switch v := body.(type) {
	case *MultipartBody:
		return v.encode()
	case map[string]any:
		return multipartFromMap(v).encode()
	default:
		return nil, "", NewDecodeError(fmt.Errorf("multipart body must be *MultipartBody or map[string]any, got %T", body))
	}
}
