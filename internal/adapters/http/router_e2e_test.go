package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/todo-lists-api/internal/adapters/http"
	"github.com/jsamuelsen11/todo-lists-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-lists-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-lists-api/internal/adapters/store/sqlstore"
	"github.com/jsamuelsen11/todo-lists-api/internal/app"
	"github.com/jsamuelsen11/todo-lists-api/internal/platform/config"
	"github.com/jsamuelsen11/todo-lists-api/internal/platform/health"
)

// newSQLiteServer wires the full stack on a temporary SQLite database.
func newSQLiteServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	logger := discardLogger()

	store, err := sqlstore.Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          "file:" + filepath.Join(t.TempDir(), "todo.db") + "?_busy_timeout=5000",
		MaxOpenConns: 4,
		MaxIdleConns: 4,
		ConnectRetry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1},
	}, nil, logger)
	if err != nil {
		t.Fatalf("sqlstore.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	registry := health.New()
	registry.Register(store)

	listSvc := app.NewListService(store.Lists(), logger)
	itemSvc := app.NewItemService(store.Items(), logger)

	router := adapthttp.NewRouter(
		handlers.NewListHandler(listSvc),
		handlers.NewItemHandler(listSvc, itemSvc),
		handlers.NewHealthHandler(registry),
		middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Logging(logger),
			middleware.Timeout(5*time.Second),
			middleware.Session(store),
		),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()

	status, raw := callRaw(t, srv, method, path, body)
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("%s %s: decoding %q: %v", method, path, raw, err)
	}
	return status, out
}

func callRaw(t *testing.T, srv *httptest.Server, method, path, body string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("%s %s: reading body: %v", method, path, err)
	}
	return resp.StatusCode, raw
}

func TestEndToEnd_GroceriesWalkthrough(t *testing.T) {
	t.Parallel()
	srv := newSQLiteServer(t)

	status, list := call(t, srv, http.MethodPost, "/lists", `{"title":"groceries"}`)
	if status != http.StatusCreated {
		t.Fatalf("POST /lists status = %d, want 201", status)
	}
	if list["title"] != "groceries" || list["description"] != nil {
		t.Errorf("created list = %v", list)
	}
	if list["created_at"] != list["updated_at"] {
		t.Errorf("created_at = %v, updated_at = %v, want equal", list["created_at"], list["updated_at"])
	}
	listPath := "/lists/" + jsonID(list)

	status, item := call(t, srv, http.MethodPost, listPath+"/items", `{"title":"milk","status":"COMPLETED"}`)
	if status != http.StatusCreated {
		t.Fatalf("POST items status = %d, want 201", status)
	}
	if item["status"] != "NOT_COMPLETED" {
		t.Errorf("new item status = %v, want NOT_COMPLETED", item["status"])
	}
	itemPath := listPath + "/items/" + jsonID(item)

	time.Sleep(2 * time.Millisecond)
	status, done := call(t, srv, http.MethodPut, itemPath, `{"complete":true}`)
	if status != http.StatusOK {
		t.Fatalf("PUT item status = %d, want 200", status)
	}
	if done["status"] != "COMPLETED" || done["title"] != "milk" {
		t.Errorf("completed item = %v", done)
	}
	if done["updated_at"] == item["updated_at"] {
		t.Errorf("updated_at = %v, want advanced", done["updated_at"])
	}

	status, untouched := call(t, srv, http.MethodPut, itemPath, `{"title":"oat milk"}`)
	if status != http.StatusOK || untouched["status"] != "COMPLETED" {
		t.Errorf("PUT without complete = (%d, %v), want status untouched", status, untouched["status"])
	}

	status, undone := call(t, srv, http.MethodPut, itemPath, `{"complete":false}`)
	if status != http.StatusOK || undone["status"] != "NOT_COMPLETED" {
		t.Errorf("PUT complete=false = (%d, %v), want NOT_COMPLETED", status, undone["status"])
	}

	status, raw := callRaw(t, srv, http.MethodGet, listPath+"/items/", "")
	if status != http.StatusOK || !strings.Contains(string(raw), `"oat milk"`) {
		t.Errorf("GET items with trailing slash = (%d, %s)", status, raw)
	}
}

func TestEndToEnd_PartialListUpdate(t *testing.T) {
	t.Parallel()
	srv := newSQLiteServer(t)

	_, list := call(t, srv, http.MethodPost, "/lists", `{"title":"chores","description":"weekend"}`)
	path := "/lists/" + jsonID(list)

	for range 2 {
		status, got := call(t, srv, http.MethodPut, path, `{"title":"X"}`)
		if status != http.StatusOK {
			t.Fatalf("PUT status = %d, want 200", status)
		}
		if got["title"] != "X" || got["description"] != "weekend" || got["created_at"] != list["created_at"] {
			t.Errorf("after partial update = %v", got)
		}
	}
}

func TestEndToEnd_NotFoundAndValidation(t *testing.T) {
	t.Parallel()
	srv := newSQLiteServer(t)

	_, a := call(t, srv, http.MethodPost, "/lists", `{"title":"a"}`)
	_, b := call(t, srv, http.MethodPost, "/lists", `{"title":"b"}`)
	_, item := call(t, srv, http.MethodPost, "/lists/"+jsonID(a)+"/items", `{"title":"milk"}`)
	foreign := "/lists/" + jsonID(b) + "/items/" + jsonID(item)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/lists/999", "", http.StatusNotFound},
		{http.MethodPut, "/lists/999", `{"title":"x"}`, http.StatusNotFound},
		{http.MethodDelete, "/lists/999", "", http.StatusNotFound},
		{http.MethodPost, "/lists/999/items", `{"title":"x"}`, http.StatusNotFound},
		{http.MethodGet, foreign, "", http.StatusNotFound},
		{http.MethodPut, foreign, `{"complete":true}`, http.StatusNotFound},
		{http.MethodDelete, foreign, "", http.StatusNotFound},
		{http.MethodPost, "/lists", `{"title":""}`, http.StatusBadRequest},
		{http.MethodPost, "/lists", `{"title":"` + strings.Repeat("a", 101) + `"}`, http.StatusBadRequest},
		{http.MethodPost, "/lists", `not json`, http.StatusBadRequest},
		{http.MethodGet, "/lists/abc", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		status, _ := callRaw(t, srv, tt.method, tt.path, tt.body)
		if status != tt.want {
			t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, status, tt.want)
		}
	}

	status, raw := callRaw(t, srv, http.MethodGet, "/lists/999/items", "")
	if status != http.StatusOK || string(raw) != "[]" {
		t.Errorf("GET unknown list items = (%d, %s), want (200, [])", status, raw)
	}
}

func TestEndToEnd_DeleteListRemovesItems(t *testing.T) {
	t.Parallel()
	srv := newSQLiteServer(t)

	_, list := call(t, srv, http.MethodPost, "/lists", `{"title":"groceries"}`)
	listPath := "/lists/" + jsonID(list)
	_, item := call(t, srv, http.MethodPost, listPath+"/items", `{"title":"milk"}`)

	status, body := call(t, srv, http.MethodDelete, listPath, "")
	if status != http.StatusOK || len(body) != 0 {
		t.Fatalf("DELETE list = (%d, %v), want (200, {})", status, body)
	}

	if status, _ := callRaw(t, srv, http.MethodGet, listPath, ""); status != http.StatusNotFound {
		t.Errorf("GET deleted list status = %d, want 404", status)
	}
	if status, raw := callRaw(t, srv, http.MethodGet, listPath+"/items", ""); status != http.StatusOK || string(raw) != "[]" {
		t.Errorf("GET items of deleted list = (%d, %s), want (200, [])", status, raw)
	}
	if status, _ := callRaw(t, srv, http.MethodGet, listPath+"/items/"+jsonID(item), ""); status != http.StatusNotFound {
		t.Errorf("GET item of deleted list status = %d, want 404", status)
	}
}

func TestEndToEnd_Readiness(t *testing.T) {
	t.Parallel()
	srv := newSQLiteServer(t)

	status, body := call(t, srv, http.MethodGet, "/health/ready", "")
	if status != http.StatusOK {
		t.Fatalf("GET /health/ready status = %d, want 200; body = %v", status, body)
	}
	checks, _ := body["checks"].(map[string]any)
	if checks["database"] != "ok" {
		t.Errorf("database check = %v, want ok", checks["database"])
	}
}

// jsonID renders a decoded JSON id for use in a path.
func jsonID(obj map[string]any) string {
	id, _ := obj["id"].(float64)
	return strconv.FormatInt(int64(id), 10)
}
