package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/screenfit/pkg/cache"
	"github.com/matzehuels/screenfit/pkg/observability"
	"github.com/matzehuels/screenfit/pkg/profile"
)

func newTestServer(t *testing.T, c cache.Cache) http.Handler {
	t.Helper()
	s, err := newServer(newLogger(&bytes.Buffer{}, LogInfo), profile.Default(), c)
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}
	return s.routes()
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServeHealth(t *testing.T) {
	rec := get(newTestServer(t, cache.NewNullCache()), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Status  string `json:"status"`
		Profile string `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Profile != "default" {
		t.Errorf("body = %+v", body)
	}
}

func TestServePreviews(t *testing.T) {
	h := newTestServer(t, cache.NewNullCache())

	tests := []struct {
		target      string
		contentType string
		prefix      string
	}{
		{"/fit?w=1334&h=750", "application/json", "{"},
		{"/preview.svg?w=1334&h=750", "image/svg+xml", "<svg"},
		{"/preview.png?w=667&h=375&scale=0.5", "image/png", "\x89PNG"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(h, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !strings.HasPrefix(rec.Body.String(), tt.prefix) {
				t.Errorf("body does not start with %q", tt.prefix)
			}
		})
	}
}

func TestServeFitSnapshot(t *testing.T) {
	rec := get(newTestServer(t, cache.NewNullCache()), "/fit?w=1334&h=750")

	var doc struct {
		Snapshot struct {
			Orientation string `json:"orientation"`
			ForceRotate bool   `json:"force_rotate"`
			Ratio       struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"ratio"`
		} `json:"snapshot"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	s := doc.Snapshot
	if s.Orientation != "landscape" || !s.ForceRotate {
		t.Errorf("orientation = %s rotate = %t, want landscape with rotation", s.Orientation, s.ForceRotate)
	}
	if s.Ratio.X != 1 || s.Ratio.Y != 1 {
		t.Errorf("ratio = %v×%v, want 1×1", s.Ratio.X, s.Ratio.Y)
	}
}

func TestServeErrors(t *testing.T) {
	h := newTestServer(t, cache.NewNullCache())

	tests := []struct {
		target string
		status int
		code   string
	}{
		{"/fit", http.StatusBadRequest, "INVALID_VIEWPORT"},
		{"/fit?w=0&h=750", http.StatusBadRequest, "INVALID_VIEWPORT"},
		{"/preview.svg?w=abc&h=750", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"/preview.png?w=100&h=100&scale=x", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"/preview.png?w=100&h=100&scale=-1", http.StatusBadRequest, "INVALID_ARGUMENT"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(h, tt.target)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if string(body.Code) != tt.code {
				t.Errorf("code = %s, want %s", body.Code, tt.code)
			}
		})
	}

	if rec := get(h, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", rec.Code)
	}
}

// memCache is an in-memory cache for exercising hits.
type memCache struct {
	mu sync.Mutex
	m  map[string][]byte
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func TestServeCaching(t *testing.T) {
	h := newTestServer(t, &memCache{m: map[string][]byte{}})

	first := get(h, "/preview.svg?w=800&h=600")
	second := get(h, "/preview.svg?w=800&h=600")
	if first.Header().Get("X-Cache") != "MISS" || second.Header().Get("X-Cache") != "HIT" {
		t.Errorf("X-Cache = %q then %q, want MISS then HIT",
			first.Header().Get("X-Cache"), second.Header().Get("X-Cache"))
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached body differs")
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestServeHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	h := newTestServer(t, cache.NewNullCache())
	get(h, "/healthz")
	get(h, "/fit")

	if len(hooks.statuses) != 2 || hooks.statuses[0] != 200 || hooks.statuses[1] != 400 {
		t.Errorf("statuses = %v, want [200 400]", hooks.statuses)
	}
}
