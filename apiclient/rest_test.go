package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestGetTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Trace"); got != "abc" {
			t.Errorf("X-Trace = %q", got)
		}
		if got := r.URL.Query().Get("expand"); got != "profile" {
			t.Errorf("expand = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(testUser{ID: 42, Name: "Alice"})
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})
	resp, err := Get[testUser](c, context.Background(), "/users/42",
		WithHeader("X-Trace", "abc"),
		WithQueryParam("expand", "profile"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data.ID != 42 || resp.Data.Name != "Alice" {
		t.Errorf("Data = %+v", resp.Data)
	}
}

func TestPostTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in testUser
		json.NewDecoder(r.Body).Decode(&in)
		in.ID = 7
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})
	resp, err := Post[testUser](c, context.Background(), "/users", testUser{Name: "Bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 201 || resp.Data.ID != 7 || resp.Data.Name != "Bob" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestTyped_RequestAuthOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer override" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL, Auth: BearerAuth("default")})
	_, err := Delete[map[string]any](c, context.Background(), "/sessions/1",
		WithRequestAuth(BearerAuth("override")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTyped_HTTPErrorPassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})
	_, err := Get[testUser](c, context.Background(), "/boom")
	if HTTPStatus(err) != 500 {
		t.Errorf("expected HTTP 500 error, got %v", err)
	}
}
