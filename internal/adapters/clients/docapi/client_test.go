package docapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fluxcrew/lifecycle/internal/adapters/clients/docapi"
	"github.com/fluxcrew/lifecycle/internal/adapters/docstore/docstoretest"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/platform/config"
	"github.com/fluxcrew/lifecycle/internal/platform/httpclient"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// fakeAPI is an in-process document API with the same status semantics as
// the real one.
type fakeAPI struct {
	mu   sync.Mutex
	docs map[string]map[string]json.RawMessage
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{docs: make(map[string]map[string]json.RawMessage)}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/collections/{c}/documents", f.list)
	mux.HandleFunc("POST /api/v1/collections/{c}/documents", f.insert)
	mux.HandleFunc("GET /api/v1/collections/{c}/documents/{name}", f.find)
	mux.HandleFunc("PUT /api/v1/collections/{c}/documents/{name}", f.update)
	mux.HandleFunc("DELETE /api/v1/collections/{c}/documents/{name}", f.remove)
	return mux
}

func (f *fakeAPI) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	coll := f.docs[r.PathValue("c")]
	names := make([]string, 0, len(coll))
	for name := range coll {
		names = append(names, name)
	}
	slices.Sort(names)

	type item struct {
		Name     string          `json:"name"`
		Document json.RawMessage `json:"document"`
	}
	out := struct {
		Documents []item `json:"documents"`
	}{Documents: []item{}}
	for _, name := range names {
		out.Documents = append(out.Documents, item{Name: name, Document: coll[name]})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (f *fakeAPI) insert(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string          `json:"name"`
		Document json.RawMessage `json:"document"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	c := r.PathValue("c")
	if f.docs[c] == nil {
		f.docs[c] = make(map[string]json.RawMessage)
	}
	if _, ok := f.docs[c][body.Name]; ok {
		w.WriteHeader(http.StatusConflict)
		return
	}
	f.docs[c][body.Name] = body.Document
	w.WriteHeader(http.StatusCreated)
}

func (f *fakeAPI) find(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, ok := f.docs[r.PathValue("c")][r.PathValue("name")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

func (f *fakeAPI) update(w http.ResponseWriter, r *http.Request) {
	var doc json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	c, name := r.PathValue("c"), r.PathValue("name")
	if _, ok := f.docs[c][name]; !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	f.docs[c][name] = doc
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeAPI) remove(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, name := r.PathValue("c"), r.PathValue("name")
	if _, ok := f.docs[c][name]; !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	delete(f.docs[c], name)
	w.WriteHeader(http.StatusNoContent)
}

func newTestClient(t *testing.T, baseURL string) *docapi.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)
	return docapi.NewClient(httpclient.New(cfg, "document-api", nil, logger), logger)
}

func TestClient_Contract(t *testing.T) {
	docstoretest.Run(t, func(t *testing.T) ports.DocumentStore {
		srv := httptest.NewServer(newFakeAPI().handler())
		t.Cleanup(srv.Close)
		return newTestClient(t, srv.URL)
	})
}

func TestClient_EscapesPathSegments(t *testing.T) {
	t.Parallel()

	var gotPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	if _, err := c.Find(context.Background(), "guilds", "a/b c"); err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	want := "/api/v1/collections/guilds/documents/a%2Fb%20c"
	if got := gotPath.Load(); got != want {
		t.Errorf("request path = %v, want %s", got, want)
	}
}

func TestClient_ServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	_, err := c.FindAll(context.Background(), "timers")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("FindAll() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_TransportErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	err := c.Insert(context.Background(), "guilds", "g1", json.RawMessage(`{}`))
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Insert() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_MalformedBodyIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"documents": [`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	if _, err := c.FindAll(context.Background(), "guilds"); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("FindAll() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	if c.Name() != "document-api" {
		t.Errorf("Name() = %q, want %q", c.Name(), "document-api")
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() = %v, want nil while breaker closed", err)
	}

	for range 2 {
		_, _ = c.Find(context.Background(), "guilds", "g1")
	}
	if err := c.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() = nil, want error once breaker opens")
	}

	before := calls.Load()
	if _, err := c.Find(context.Background(), "guilds", "g1"); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Find() with open breaker error = %v, want ErrUnavailable", err)
	}
	if calls.Load() != before {
		t.Error("open breaker still reached the server")
	}
}
