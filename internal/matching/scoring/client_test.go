package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPClient_Score(t *testing.T) {
	var gotPath string
	var gotBody Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"matches": []Pair{{ID: 1, Score: 0.9}, {ID: 2, Score: 0.1}},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	pairs, err := c.Score(context.Background(), Request{
		QueryText: "Go, Rust 5y infra",
		Items:     []Item{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/match" {
		t.Fatalf("posted to %q, want /match", gotPath)
	}
	if gotBody.QueryText != "Go, Rust 5y infra" || len(gotBody.Items) != 2 {
		t.Fatalf("unexpected wire request: %+v", gotBody)
	}
	if len(pairs) != 2 || pairs[0].ID != 1 || pairs[0].Score != 0.9 || pairs[1].ID != 2 {
		t.Fatalf("unexpected pairs: %+v", pairs)
	}
}

func TestHTTPClient_ConnectionRefusedIsUnavailable(t *testing.T) {
	// Grab a port that nothing listens on.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	l.Close()

	c := NewHTTPClient("http://"+addr, time.Second, nil)
	_, err = c.Score(context.Background(), Request{QueryText: "q"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if errors.Is(err, ErrService) {
		t.Fatalf("connection failure must not map to ErrService: %v", err)
	}
}

func TestHTTPClient_Non2xxIsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	_, err := c.Score(context.Background(), Request{QueryText: "q"})
	if !errors.Is(err, ErrService) {
		t.Fatalf("expected ErrService, got %v", err)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatalf("reachable-but-failing service must not map to ErrUnavailable: %v", err)
	}
}

func TestHTTPClient_MalformedBodyIsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	_, err := c.Score(context.Background(), Request{QueryText: "q"})
	if !errors.Is(err, ErrService) {
		t.Fatalf("expected ErrService for malformed body, got %v", err)
	}
}

func TestHTTPClient_EmptyMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"matches": []}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	pairs, err := c.Score(context.Background(), Request{QueryText: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 0 {
		t.Fatalf("expected empty result, got %+v", pairs)
	}
}

func TestNewHTTPClient_TrimsTrailingSlash(t *testing.T) {
	c := NewHTTPClient("http://localhost:5000/", time.Second, nil).(*httpClient)
	if c.endpoint != "http://localhost:5000/match" {
		t.Fatalf("unexpected endpoint: %q", c.endpoint)
	}
}
