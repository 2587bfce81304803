package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/semview/internal/view"
)

const testDoc = `{
  "database_name": "testdb",
  "variable_info": {
    "weight": {"class": "NCIT:C25208", "schema_reconstruction": [{"aesthetic_label": "Measurements"}]},
    "age": {"schema_reconstruction": [{"aesthetic_label": "Demographics"}]}
  }
}`

// newTestServer loads the given document body and returns a running test
// server around the viewer routes.
func newTestServer(t *testing.T, body string) (*httptest.Server, *view.Controller) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "variable_info.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c := view.NewController(path, "Test Viewer")
	_ = c.Load(context.Background())

	s := New(Config{Port: 0}, c)
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv, c
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestIndex(t *testing.T) {
	srv, _ := newTestServer(t, testDoc)

	code, body := get(t, srv.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !strings.Contains(body, "testdb: 2 variables") {
		t.Errorf("missing dataset summary: %q", body)
	}
	// First variable in group-then-name order is age (Demographics).
	if !strings.Contains(body, `class="variable active" href="/variables/age"`) {
		t.Errorf("age should be auto-selected: %q", body)
	}
	if !strings.Contains(body, `href="/style.css"`) {
		t.Errorf("stylesheet should be absolute: %q", body)
	}
}

func TestSelectVariable(t *testing.T) {
	srv, c := newTestServer(t, testDoc)

	code, body := get(t, srv.URL+"/variables/weight")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !strings.Contains(body, `class="variable active" href="/variables/weight"`) {
		t.Errorf("weight should be active: %q", body)
	}
	if !strings.Contains(body, "<h2>weight</h2>") {
		t.Errorf("detail should show weight: %q", body)
	}
	if c.State().Selected != "weight" {
		t.Errorf("controller selection = %q, want weight", c.State().Selected)
	}
}

func TestSelectUnknownVariable(t *testing.T) {
	srv, c := newTestServer(t, testDoc)

	code, _ := get(t, srv.URL+"/variables/missing")
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
	// Selection is untouched by the failed request.
	if c.State().Selected != "age" {
		t.Errorf("selection = %q, want age", c.State().Selected)
	}
}

func TestFailedLoadServesErrorPage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	c := view.NewController(upstream.URL+"/variable_info.json", "Test Viewer")
	_ = c.Load(context.Background())

	s := New(Config{}, c)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	code, body := get(t, srv.URL+"/")
	if code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", code)
	}
	if !strings.Contains(body, "404") {
		t.Errorf("error page should mention the upstream status: %q", body)
	}
	if strings.Contains(body, "variable-list") || strings.Contains(body, "variable-detail") {
		t.Error("failed state must not render list or detail")
	}
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, testDoc)
	code, body := get(t, srv.URL+"/healthz")
	if code != http.StatusOK {
		t.Errorf("status = %d, want 200", code)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("body = %q", body)
	}
}

func TestStyleCSS(t *testing.T) {
	srv, _ := newTestServer(t, testDoc)
	resp, err := http.Get(srv.URL + "/style.css")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("content type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), ".sidebar") {
		t.Error("stylesheet should contain sidebar rules")
	}
}

func TestEmptyDataset(t *testing.T) {
	srv, _ := newTestServer(t, `{"database_name": "empty"}`)
	code, body := get(t, srv.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !strings.Contains(body, "empty: 0 variables") {
		t.Errorf("zero-count summary missing: %q", body)
	}
}
