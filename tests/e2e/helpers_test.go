//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	pgslot "github.com/heartmarshall/captionkit-backend/internal/adapter/postgres/slot"
	"github.com/heartmarshall/captionkit-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/captionkit-backend/internal/app"
	"github.com/heartmarshall/captionkit-backend/internal/config"
	"github.com/heartmarshall/captionkit-backend/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// Test server
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	cfg    *config.Config
}

// testLogWriter routes slog output to t.Log.
type testLogWriter struct {
	t *testing.T
}

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// testConfig returns a config with no artificial delays and a slot key
// unique to the test, so tests sharing the database do not collide.
func testConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{
			Driver:  config.DriverPostgres,
			SlotKey: "e2e-" + uuid.NewString(),
		},
		Generator: config.GeneratorConfig{MaxInputLength: 200},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         60,
		},
		RateLimit: config.RateLimitConfig{
			GeneratePerMinute:  100,
			SubscribePerMinute: 3,
			CleanupInterval:    time.Minute,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return startServer(t, testhelper.SetupTestDB(t), testConfig())
}

// startServer serves a fresh handler over pool with cfg. Calling it twice
// with the same pool and slot key simulates a process restart.
func startServer(t *testing.T, pool *pgxpool.Pool, cfg *config.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(rl.Stop)

	handler := app.NewHandler(context.Background(), cfg, logger, pgslot.New(pool), rl)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, out.Bytes()
}

// doJSON sends a request and decodes a JSON response into dst.
func (ts *testServer) doJSON(t *testing.T, method, path string, body, dst any) int {
	t.Helper()

	status, raw := ts.do(t, method, path, body)
	if dst != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, dst); err != nil {
			t.Fatalf("decode response %s: %v", raw, err)
		}
	}
	return status
}

// ---------------------------------------------------------------------------
// Response shapes
// ---------------------------------------------------------------------------

type captionDTO struct {
	ID          int64    `json:"id"`
	Text        string   `json:"text"`
	Style       string   `json:"style"`
	Niche       string   `json:"niche"`
	Hashtags    []string `json:"hashtags"`
	Engagement  int      `json:"engagement"`
	Likes       string   `json:"likes"`
	SavedAt     *string  `json:"savedAt,omitempty"`
	HashtagLine string   `json:"hashtagLine,omitempty"`
}

type batchDTO struct {
	Seq      uint64       `json:"seq"`
	Input    string       `json:"input"`
	Style    string       `json:"style"`
	Niche    string       `json:"niche"`
	Captions []captionDTO `json:"captions"`
	Stale    bool         `json:"stale"`
}

type savedListDTO struct {
	Captions []captionDTO `json:"captions"`
	Filtered int          `json:"filtered"`
	Total    int          `json:"total"`
}

type errorDTO struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

// generate posts a generation request and requires success.
func (ts *testServer) generate(t *testing.T, input, style, niche string) batchDTO {
	t.Helper()

	var batch batchDTO
	status := ts.doJSON(t, http.MethodPost, "/api/captions/generate", map[string]string{
		"input": input,
		"style": style,
		"niche": niche,
	}, &batch)
	if status != http.StatusOK {
		t.Fatalf("generate: status %d", status)
	}
	return batch
}
