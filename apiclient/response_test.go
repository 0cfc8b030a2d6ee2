package apiclient

import (
	"net/http"
	"reflect"
	"testing"
)

func TestDecodeResponse_JSON(t *testing.T) {
	header := http.Header{"Content-Type": []string{"application/json; charset=utf-8"}}
	resp, err := decodeResponse(200, header, []byte(`{"name":"Alice","age":30}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{"name": "Alice", "age": float64(30)}
	if !reflect.DeepEqual(resp.Data, want) {
		t.Errorf("Data = %v, want %v", resp.Data, want)
	}
}

func TestDecodeResponse_JSONScalarAndArray(t *testing.T) {
	header := http.Header{"Content-Type": []string{"application/json"}}

	resp, err := decodeResponse(200, header, []byte(`[1,2]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(resp.Data, []any{float64(1), float64(2)}) {
		t.Errorf("Data = %v", resp.Data)
	}

	resp, err = decodeResponse(200, header, []byte(`"ok"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data != "ok" {
		t.Errorf("Data = %v", resp.Data)
	}
}

func TestDecodeResponse_EmptyJSONBody(t *testing.T) {
	header := http.Header{"Content-Type": []string{"application/json"}}
	resp, err := decodeResponse(204, header, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data != nil {
		t.Errorf("Data = %v, want nil", resp.Data)
	}
}

func TestDecodeResponse_MalformedJSON(t *testing.T) {
	header := http.Header{"Content-Type": []string{"application/json"}}
	_, err := decodeResponse(200, header, []byte(`{broken`))
	if !IsDecodeError(err) {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestDecodeResponse_Text(t *testing.T) {
	for _, ct := range []string{"text/plain; charset=utf-8", "text/html"} {
		header := http.Header{"Content-Type": []string{ct}}
		resp, err := decodeResponse(200, header, []byte("<h1>hi</h1>"))
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", ct, err)
		}
		if resp.Data != "<h1>hi</h1>" {
			t.Errorf("Data = %v", resp.Data)
		}
		if resp.Text() != "<h1>hi</h1>" {
			t.Errorf("Text() = %q", resp.Text())
		}
	}
}

func TestDecodeResponse_UnsupportedType(t *testing.T) {
	header := http.Header{"Content-Type": []string{"application/octet-stream"}}
	_, err := decodeResponse(200, header, []byte{0x00})
	if !IsUnsupportedContentType(err) {
		t.Errorf("expected unsupported content type error, got %v", err)
	}
}

func TestResponseIsSuccess(t *testing.T) {
	if !(&Response{StatusCode: 204}).IsSuccess() {
		t.Error("204 should be success")
	}
	if (&Response{StatusCode: 404}).IsSuccess() {
		t.Error("404 should not be success")
	}
}
