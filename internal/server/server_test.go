package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/internal/agent/core"
	"github.com/she-oracle/orchestrator/internal/capability"
	"github.com/she-oracle/orchestrator/internal/memory"
	"github.com/she-oracle/orchestrator/internal/oracle"
	"github.com/she-oracle/orchestrator/models"
)

type failingBackend struct{}

func (failingBackend) Complete(context.Context, string, string) (string, error) {
	return "", errors.New("backend down")
}

type stubTools struct{}

func (stubTools) Has(string) bool { return false }
func (stubTools) Invoke(context.Context, string, map[string]interface{}) (map[string]interface{}, error) {
	return nil, errors.New("no tools in this test")
}

// newTestServer wires a server whose oracle is down, so every run degrades
// deterministically to a fallback plan.
func newTestServer(t *testing.T, cfg config.ServerConfig) (*Server, memory.Store) {
	t.Helper()
	gw := oracle.NewGateway(config.OracleConfig{Models: []string{"m"}, MaxRetries: 1}, failingBackend{})
	gw.SetSleep(func(time.Duration) {})
	reg, err := capability.NewRegistry(capability.DefaultToolCards(), "", nil)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	store := memory.NewInMemoryStore(config.MemoryConfig{})
	orch := core.NewOrchestrator(gw, reg, stubTools{}, store, nil, nil, nil, config.PlannerConfig{}, 3)
	return New(cfg, orch, store, gw, nil, nil), store
}

func TestRunEndpointReturnsPlan(t *testing.T) {
	srv, _ := newTestServer(t, config.ServerConfig{})

	body := `{"goal": "find grants for my bakery", "domain": "grants"}`
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Plan *models.SynthesizedPlan `json:"plan"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Plan == nil || resp.Plan.Domain != "grants" {
		t.Fatalf("expected grants plan, got %+v", resp.Plan)
	}
	if resp.Plan.Goal != "find grants for my bakery" {
		t.Fatalf("goal not carried through: %s", resp.Plan.Goal)
	}
}

func TestRunEndpointRejectsMissingGoal(t *testing.T) {
	srv, _ := newTestServer(t, config.ServerConfig{})

	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(`{"domain": "career"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStreamEndpointEmitsSSEFrames(t *testing.T) {
	srv, _ := newTestServer(t, config.ServerConfig{StreamEnabled: true})

	body := `{"goal": "know my maternity rights", "domain": "legal"}`
	req := httptest.NewRequest(http.MethodPost, "/stream", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "text/event-stream" {
		t.Fatalf("content type %q", ct)
	}

	var types []string
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev models.Event
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			t.Fatalf("bad frame %q: %v", line, err)
		}
		types = append(types, ev.Type)
	}
	if len(types) < 3 {
		t.Fatalf("expected several frames, got %v", types)
	}
	if types[len(types)-1] != models.EventDone {
		t.Fatalf("final frame must be done, got %s", types[len(types)-1])
	}
	if types[len(types)-2] != models.EventResult {
		t.Fatalf("result frame must precede done, got %v", types)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, config.ServerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding health: %v", err)
	}
	if _, ok := resp["oracle"]; !ok {
		t.Fatalf("health must report oracle state: %v", resp)
	}
}

func TestSessionRoutesRequireTokenWhenConfigured(t *testing.T) {
	srv, store := newTestServer(t, config.ServerConfig{JWTSecret: "sekrit"})

	if err := store.AddGoal(context.Background(), "s1", "g", "career"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/session/s1", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	token, err := SignJWT("user-1", []byte("sekrit"), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/session/s1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestArtifactDownload(t *testing.T) {
	srv, store := newTestServer(t, config.ServerConfig{})

	art := models.NewArtifact("rights_summary", "Legal Rights Summary", "legal", "# Rights", nil)
	if err := store.AddArtifact(context.Background(), "s1", art); err != nil {
		t.Fatalf("seed: %v", err)
	}

	body := `{"session_id": "s1", "artifact_id": "` + art.ID + `"}`
	req := httptest.NewRequest(http.MethodPost, "/download-artifact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "# Rights" {
		t.Fatalf("wrong content: %q", rec.Body.String())
	}
}
