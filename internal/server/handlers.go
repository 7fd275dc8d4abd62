package server

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/she-oracle/orchestrator/internal/agent/core"
	"github.com/she-oracle/orchestrator/models"
)

// health reports oracle gateway state and knowledge index size.
func (s *Server) health(c echo.Context) error {
	h := s.gw.Health()
	chunks := 0
	if s.kb != nil {
		chunks = s.kb.Count()
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":           "ok",
		"oracle":           h,
		"knowledge_chunks": chunks,
		"telemetry":        s.telemetry.Snapshot(),
	})
}

// runPlan executes a full planning run and returns the terminal event's plan
// once the stream closes.
func (s *Server) runPlan(c echo.Context) error {
	var req core.RunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Goal == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "goal is required")
	}

	var result *models.Event
	var events []models.Event
	for ev := range s.orch.Run(c.Request().Context(), req) {
		events = append(events, ev)
		if ev.Type == models.EventResult || ev.Type == models.EventError {
			last := ev
			result = &last
		}
	}
	if result == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "run produced no terminal event")
	}
	if result.Type == models.EventError {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, result.Content)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"plan":   result.Plan,
		"data":   result.Data,
		"events": len(events),
	})
}

// streamPlan delivers the run's events as SSE frames, one data frame per
// event and a final done frame.
func (s *Server) streamPlan(c echo.Context) error {
	var req core.RunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Goal == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "goal is required")
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	flusher, ok := resp.Writer.(http.Flusher)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "streaming unsupported")
	}

	write := func(payload interface{}) error {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if _, err := resp.Write([]byte("data: " + string(data) + "\n\n")); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	for ev := range s.orch.Run(c.Request().Context(), req) {
		if err := write(ev); err != nil {
			s.logger.Printf("stream write failed: %v", err)
			return nil
		}
	}
	_ = write(models.Event{Type: models.EventDone})
	return nil
}

// getSession returns the stored session blob.
func (s *Server) getSession(c echo.Context) error {
	sess, err := s.store.Load(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

type profileUpdateRequest struct {
	SessionID string                 `json:"session_id"`
	Updates   map[string]interface{} `json:"updates"`
}

// updateProfile merges caller-supplied fields into the session profile.
func (s *Server) updateProfile(c echo.Context) error {
	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SessionID == "" || len(req.Updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id and updates are required")
	}
	if err := s.store.UpdateProfile(c.Request().Context(), req.SessionID, req.Updates); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

// listArtifacts returns every stored artifact for a session.
func (s *Server) listArtifacts(c echo.Context) error {
	arts, err := s.store.Artifacts(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"artifacts": arts})
}

type downloadRequest struct {
	SessionID  string `json:"session_id"`
	ArtifactID string `json:"artifact_id"`
}

// downloadArtifact serves one artifact's content as a markdown attachment.
func (s *Server) downloadArtifact(c echo.Context) error {
	var req downloadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	arts, err := s.store.Artifacts(c.Request().Context(), req.SessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	for _, art := range arts {
		if art.ID == req.ArtifactID {
			c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+art.Title+`.md"`)
			return c.Blob(http.StatusOK, "text/markdown", []byte(art.Content))
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "artifact not found")
}
