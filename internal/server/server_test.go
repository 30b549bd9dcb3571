package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/javapkg/builddep/pkg/builddep"
	"github.com/javapkg/builddep/pkg/config"
	"github.com/javapkg/builddep/pkg/errors"
	"github.com/javapkg/builddep/pkg/typereg"
)

const samplePOM = `<project>
  <groupId>org.example</groupId>
  <artifactId>app</artifactId>
  <version>1.0</version>
  <dependencies>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13</version>
      <scope>test</scope>
    </dependency>
    <dependency>
      <groupId>org.slf4j</groupId>
      <artifactId>slf4j-api</artifactId>
      <scope>runtime</scope>
    </dependency>
  </dependencies>
</project>`

func newTestRouter() http.Handler {
	logger := log.New(io.Discard)
	return NewRouter(logger, builddep.New(builddep.Options{}), typereg.Default())
}

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(t, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestExtract(t *testing.T) {
	w := do(t, http.MethodPost, "/api/v1/extract", samplePOM)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp struct {
		ID        string `json:"id"`
		Project   string `json:"project"`
		Artifacts []struct {
			GroupID    string `json:"groupId"`
			ArtifactID string `json:"artifactId"`
			Version    string `json:"version"`
		} `json:"artifacts"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.ID == "" {
		t.Error("expected a report id")
	}
	if resp.Project != "org.example:app:1.0" {
		t.Errorf("project = %q", resp.Project)
	}
	if len(resp.Artifacts) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(resp.Artifacts))
	}
	if got := resp.Artifacts[0]; got.ArtifactID != "junit" || got.Version != "4.13" {
		t.Errorf("unexpected artifact %+v", got)
	}
}

func TestExtractCache(t *testing.T) {
	router := newTestRouter()
	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(samplePOM))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first, second := post(), post()
	if got := first.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("first X-Cache = %q, want miss", got)
	}
	if got := second.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}

	var a, b ExtractResponse
	json.NewDecoder(first.Body).Decode(&a)
	json.NewDecoder(second.Body).Decode(&b)
	if a.ID == b.ID {
		t.Error("each response should get its own report id")
	}
	if len(a.Artifacts) != len(b.Artifacts) || a.Project != b.Project {
		t.Errorf("cached response differs: %+v vs %+v", a, b)
	}
}

func TestExtractEmptyProject(t *testing.T) {
	w := do(t, http.MethodPost, "/api/v1/extract", `<project><groupId>g</groupId><artifactId>a</artifactId></project>`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"artifacts":[]`) {
		t.Errorf("expected empty artifact array, got %s", w.Body.String())
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"empty body", "", errors.ErrCodeInvalidInput},
		{"not xml", "this is not xml", errors.ErrCodeInvalidDescriptor},
		{
			"missing artifactId",
			`<project><groupId>g</groupId><artifactId>a</artifactId><dependencies><dependency><groupId>x</groupId></dependency></dependencies></project>`,
			errors.ErrCodeInvalidDescriptor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, http.MethodPost, "/api/v1/extract", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}

			var resp ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, resp.Code)
			}
			if resp.Message == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestPolicy(t *testing.T) {
	w := do(t, http.MethodGet, "/api/v1/policy", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var cfg config.Config
	if err := json.NewDecoder(w.Body).Decode(&cfg); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !cfg.Exclusions.Replace || len(cfg.Exclusions.Artifacts) == 0 {
		t.Errorf("unexpected exclusions %+v", cfg.Exclusions)
	}
	if cfg.Plugins.DefaultGroup != builddep.DefaultPluginGroup {
		t.Errorf("default group = %q", cfg.Plugins.DefaultGroup)
	}
	if len(cfg.Types) != typereg.Default().Len() {
		t.Errorf("expected %d types, got %d", typereg.Default().Len(), len(cfg.Types))
	}
}

func TestMethodNotAllowed(t *testing.T) {
	w := do(t, http.MethodGet, "/api/v1/extract", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidDescriptor, http.StatusBadRequest},
		{errors.ErrCodeInvalidInput, http.StatusBadRequest},
		{errors.ErrCodeFileNotFound, http.StatusNotFound},
		{errors.ErrCodeUnsupported, http.StatusNotImplemented},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
