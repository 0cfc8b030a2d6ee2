package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
)

// MultipartBody represents a multipart/form-data request body. Pass it as
// the Body of a Request with a multipart content type; the builder swaps
// in the boundary-carrying Content-Type header automatically.
type MultipartBody struct {
	// Fields are simple key-value form fields.
	Fields map[string]string
	// Files are binary upload parts.
	Files []FileField
}

// FileField is one binary part of a multipart request.
type FileField struct {
	// FieldName is the form field name.
	FieldName string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the part's MIME type. Empty means application/octet-stream.
	ContentType string
	// Data is the part content. Used if Reader is nil.
	Data []byte
	// Reader is an alternative to Data for streaming content in.
	Reader io.Reader
}

// multipartFromMap converts a plain map into a MultipartBody: []byte
// values become binary parts named after their key, everything else a
// text field.
func multipartFromMap(m map[string]any) *MultipartBody {
	body := &MultipartBody{Fields: map[string]string{}}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := m[k].(type) {
		case []byte:
			body.Files = append(body.Files, FileField{FieldName: k, FileName: k, Data: v})
		default:
			body.Fields[k] = fmt.Sprint(v)
		}
	}
	return body
}

// encode builds the multipart payload and the Content-Type header value
// carrying the generated boundary.
func (m *MultipartBody) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range m.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", NewDecodeError(fmt.Errorf("write multipart field %q: %w", k, err))
		}
	}

	for _, f := range m.Files {
		part, err := createPart(w, f)
		if err != nil {
			return nil, "", NewDecodeError(fmt.Errorf("create multipart part %q: %w", f.FieldName, err))
		}
		if f.Data != nil {
			_, err = part.Write(f.Data)
		} else if f.Reader != nil {
			_, err = io.Copy(part, f.Reader)
		}
		if err != nil {
			return nil, "", NewDecodeError(fmt.Errorf("write multipart part %q: %w", f.FieldName, err))
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", NewDecodeError(err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// createPart opens a part writer, honoring a custom part content type.
func createPart(w *multipart.Writer, f FileField) (io.Writer, error) {
	if f.ContentType == "" {
		return w.CreateFormFile(f.FieldName, f.FileName)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+escapeQuotes(f.FieldName)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
	header.Set("Content-Type", f.ContentType)
	return w.CreatePart(header)
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
