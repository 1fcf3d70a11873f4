//go:build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/memorable-quantities/internal/adapter/provider/deepseek"
	"github.com/heartmarshall/memorable-quantities/internal/config"
	"github.com/heartmarshall/memorable-quantities/internal/domain"
	"github.com/heartmarshall/memorable-quantities/internal/metrics"
	"github.com/heartmarshall/memorable-quantities/internal/service/chat"
	"github.com/heartmarshall/memorable-quantities/internal/service/memorable"
	"github.com/heartmarshall/memorable-quantities/internal/transport/middleware"
	"github.com/heartmarshall/memorable-quantities/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// fakeUpstream imitates the DeepSeek chat-completions API.
// ---------------------------------------------------------------------------

type fakeUpstream struct {
	mu       sync.Mutex
	requests []map[string]any

	// status and body override every response when status != 0.
	status int
	body   string
	// sse is returned when the request asks for a stream.
	sse string
}

func (u *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if u.status != 0 && r.Method == http.MethodGet {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(u.status)
		w.Write([]byte(u.body))
		return
	}
	if r.Method == http.MethodGet && r.URL.Path == "/models" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[{"id":"deepseek-chat","object":"model","owned_by":"deepseek"}]}`))
		return
	}

	var req map[string]any
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	u.mu.Lock()
	u.requests = append(u.requests, req)
	u.mu.Unlock()

	if u.status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(u.status)
		w.Write([]byte(u.body))
		return
	}

	if stream, _ := req["stream"].(bool); stream {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte(u.sse))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{
		"id": "cmpl-e2e",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "deepseek-chat",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Summary: e2e"}}],
		"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
	}`))
}

func (u *fakeUpstream) received() []map[string]any {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]map[string]any(nil), u.requests...)
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL      string
	Client   *http.Client
	Upstream *fakeUpstream
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack against a fake
// model API.
func setupTestServer(t *testing.T, upstream *fakeUpstream) *testServer {
	t.Helper()

	// 1. Fake model API.
	if upstream == nil {
		upstream = &fakeUpstream{}
	}
	llmSrv := httptest.NewServer(upstream)
	t.Cleanup(llmSrv.Close)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	reg := metrics.NewRegistry()
	m := metrics.New(reg)

	// 3. Model client.
	llm := deepseek.NewClient(config.LLMConfig{
		APIKey:  "sk-e2e",
		BaseURL: llmSrv.URL,
		Model:   "deepseek-chat",
	}, m, logger)

	// 4. Services.
	chatService := chat.NewService(logger, llm)
	memorableService := memorable.NewService(logger, llm, memorable.NewComposer(domain.DefaultReferenceTable()))

	// 5. Router.
	mux := rest.NewRouter(rest.Routes{
		Chat:        rest.NewChatHandler(chatService, logger),
		Memorable:   rest.NewMemorableHandler(memorableService, logger),
		Catalog:     rest.NewCatalogHandler(domain.Categories(), domain.Languages()),
		Health:      rest.NewHealthHandler(llm, "test-version"),
		Metrics:     metrics.Handler(reg),
		MetricsPath: "/metrics",
	})

	// 6. Middleware chain.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS", AllowedHeaders: "Content-Type"}),
		middleware.Metrics(m),
	)(mux)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Upstream: upstream,
	}
}

// postJSON sends a JSON POST request and returns status and raw body.
func (ts *testServer) postJSON(t *testing.T, path, body string) (*http.Response, []byte) {
	t.Helper()

	resp, err := ts.Client.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// get sends a GET request and returns status and raw body.
func (ts *testServer) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}
