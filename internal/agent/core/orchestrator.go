package core

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/internal/agent/telemetry"
	"github.com/she-oracle/orchestrator/internal/capability"
	"github.com/she-oracle/orchestrator/internal/fallback"
	"github.com/she-oracle/orchestrator/internal/knowledge"
	"github.com/she-oracle/orchestrator/internal/memory"
	"github.com/she-oracle/orchestrator/internal/oracle"
	"github.com/she-oracle/orchestrator/models"
)

// ToolInvoker dispatches capability invocations. Implemented by tools.Set.
type ToolInvoker interface {
	Has(name string) bool
	Invoke(ctx context.Context, name string, input map[string]interface{}) (map[string]interface{}, error)
}

// ArtifactGenerator produces output documents from a finished plan.
// Implemented by artifacts.Registry.
type ArtifactGenerator interface {
	Generate(ctx context.Context, plan *models.SynthesizedPlan, toolResults map[string]map[string]interface{}, extra map[string]interface{}) ([]models.Artifact, error)
}

// RunRequest is one planning request.
type RunRequest struct {
	SessionID string                 `json:"session_id"`
	Goal      string                 `json:"goal"`
	Domain    string                 `json:"domain"`
	Context   map[string]interface{} `json:"context"`
}

// Orchestrator drives a full planning run: memory load, goal analysis,
// intent classification, decomposition, the ReAct loop, synthesis with
// critic review, artifact generation, and persistence. One orchestrator
// serves many concurrent runs; per-run state lives on the stack of Run's
// producer goroutine.
type Orchestrator struct {
	gw         *oracle.Gateway
	registry   *capability.Registry
	classifier *Classifier
	toolset    ToolInvoker
	store      memory.Store
	kb         knowledge.Retriever
	artifacts  ArtifactGenerator
	telemetry  *telemetry.Telemetry
	cfg        config.PlannerConfig
	topK       int
	logger     *log.Logger
}

// NewOrchestrator wires the pipeline. artifacts and tel may be nil.
func NewOrchestrator(
	gw *oracle.Gateway,
	registry *capability.Registry,
	toolset ToolInvoker,
	store memory.Store,
	kb knowledge.Retriever,
	artifacts ArtifactGenerator,
	tel *telemetry.Telemetry,
	cfg config.PlannerConfig,
	topK int,
) *Orchestrator {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = 8
	}
	if cfg.MaxReplanAttempts <= 0 {
		cfg.MaxReplanAttempts = 2
	}
	if cfg.ToolResultCharBudget <= 0 {
		cfg.ToolResultCharBudget = 800
	}
	if topK <= 0 {
		topK = 5
	}
	return &Orchestrator{
		gw:         gw,
		registry:   registry,
		classifier: NewClassifier(gw, registry),
		toolset:    toolset,
		store:      store,
		kb:         kb,
		artifacts:  artifacts,
		telemetry:  tel,
		cfg:        cfg,
		topK:       topK,
		logger:     log.New(log.Writer(), "[ORCHESTRATOR] ", log.LstdFlags),
	}
}

// decision is the oracle's per-step control record.
type decision struct {
	Thought string `json:"thought"`
	Action  string `json:"action"`
	Tool    string `json:"tool"`
	Reason  string `json:"reason"`
}

// Run executes one planning run, delivering ordered progress events over the
// returned channel. Exactly one terminal result or error event is emitted,
// then the channel is closed. Cancel ctx to abort between steps.
func (o *Orchestrator) Run(ctx context.Context, req RunRequest) <-chan models.Event {
	events := make(chan models.Event, 16)
	go func() {
		defer close(events)
		o.run(ctx, req, events)
	}()
	return events
}

func (o *Orchestrator) run(ctx context.Context, req RunRequest, events chan<- models.Event) {
	started := time.Now()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	domain := strings.ToLower(strings.TrimSpace(req.Domain))
	if domain == "" {
		domain = "general"
	}
	goal := strings.TrimSpace(req.Goal)

	emit := func(ev models.Event) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if goal == "" {
		emit(models.Event{Type: models.EventError, Content: "goal is required"})
		o.telemetry.RecordRun("error", time.Since(started))
		return
	}

	if !emit(models.Event{Type: models.EventSession, Data: map[string]interface{}{"session_id": sessionID}}) {
		return
	}

	// Memory load and goal recording. Failures degrade to an empty summary;
	// planning never depends on the store being up.
	memorySummary, err := o.store.ContextSummary(ctx, sessionID)
	if err != nil {
		o.logger.Printf("context summary failed for %s: %v", sessionID, err)
		memorySummary = memory.NoPriorContext
	}
	if err := o.store.AddGoal(ctx, sessionID, goal, domain); err != nil {
		o.logger.Printf("recording goal failed for %s: %v", sessionID, err)
	}

	knowledgeBlock := knowledge.NoKnowledgeFound
	if o.kb != nil {
		knowledgeBlock = o.kb.RetrieveFormatted(ctx, goal, domain, o.topK)
	}

	if !emit(models.Event{Type: models.EventThinking, Content: "Analyzing your goal and context..."}) {
		return
	}

	// Structured context extraction, explicit caller context wins.
	o.telemetry.RecordOracleRequest("analyze")
	inferred := analyzeGoal(ctx, o.gw, goal, domain)
	for k, v := range req.Context {
		inferred[k] = v
	}
	o.writeBackProfile(ctx, sessionID, inferred)

	o.telemetry.RecordOracleRequest("classify")
	intent := o.classifier.Classify(ctx, goal, domain, memorySummary)
	if !emit(models.Event{Type: models.EventIntentAnalyzed, Intent: &intent}) {
		return
	}

	plan := Decompose(intent, sessionID, inferred)
	if !emit(models.Event{Type: models.EventPlanDecomposed, SubTasks: plan.SubTasks}) {
		return
	}
	guidance := Guidance(plan)

	// ReAct loop. Each capability runs at most once; every exit path falls
	// through to synthesis.
	toolResults := map[string]map[string]interface{}{}
	var invoked []string
	oracleDown := false

	for step := 0; step < o.cfg.MaxSteps; step++ {
		if ctx.Err() != nil {
			emit(models.Event{Type: models.EventError, Content: "run cancelled"})
			o.telemetry.RecordRun("error", time.Since(started))
			return
		}

		prompt := buildReactPrompt(goal, domain, memorySummary, knowledgeBlock, guidance,
			o.registry.Catalog(), toolResults, invoked, o.cfg.ToolResultCharBudget)
		o.telemetry.RecordOracleRequest("react")
		reply := o.gw.Generate(ctx, prompt)
		if !oracle.IsResponseOK(reply) {
			oracleDown = true
			break
		}

		var dec decision
		if err := extractJSON(reply, &dec); err != nil {
			o.logger.Printf("unparsable reasoning step (%v), moving to synthesis", err)
			break
		}
		if dec.Thought != "" {
			if !emit(models.Event{Type: models.EventThinking, Content: dec.Thought}) {
				return
			}
		}

		toolName := strings.ToLower(strings.TrimSpace(dec.Tool))
		if strings.EqualFold(dec.Action, "SYNTHESIZE") || toolName == "" {
			break
		}
		if !o.registry.Has(toolName) || !o.toolset.Has(toolName) {
			o.logger.Printf("oracle selected unknown tool %q, moving to synthesis", toolName)
			break
		}
		if _, done := toolResults[toolName]; done {
			o.logger.Printf("oracle re-selected %s, moving to synthesis", toolName)
			break
		}

		if !emit(models.Event{Type: models.EventActing, Tool: toolName, Content: dec.Reason}) {
			return
		}
		subtaskID := o.markSubTask(plan, toolName, models.SubTaskActive)
		if subtaskID > 0 {
			if !emit(models.Event{Type: models.EventSubTaskStart, SubTaskID: subtaskID, Description: subTaskDescription(plan, subtaskID)}) {
				return
			}
		}

		input := subTaskInput(plan, toolName)
		if input == nil {
			input = inputFor(toolName, intent, inferred)
		}
		result, err := o.toolset.Invoke(ctx, toolName, input)
		o.telemetry.RecordToolInvocation(toolName, err != nil)
		if err != nil {
			o.logger.Printf("tool %s failed: %v", toolName, err)
			result = map[string]interface{}{"error": err.Error()}
			o.markSubTask(plan, toolName, models.SubTaskFailed)
		} else {
			o.markSubTask(plan, toolName, models.SubTaskComplete)
			if subtaskID > 0 {
				if !emit(models.Event{Type: models.EventSubTaskComplete, SubTaskID: subtaskID}) {
					return
				}
			}
		}
		toolResults[toolName] = result
		invoked = append(invoked, toolName)
		if !emit(models.Event{Type: models.EventToolResult, Tool: toolName, Data: result}) {
			return
		}
	}

	// Synthesis with bounded critic/replan, then the degraded path when the
	// oracle is gone or never produced parseable JSON.
	var final *models.SynthesizedPlan
	degraded := oracleDown

	if !oracleDown {
		final, oracleDown = o.synthesize(ctx, emit, goal, domain, memorySummary, knowledgeBlock, toolResults)
		degraded = final == nil
	}

	if final == nil {
		fb := fallback.Plan(domain, goal)
		final = &fb
	}

	final.Goal = goal
	final.Domain = domain
	final.Intent = &intent
	if final.ToolInsights == nil {
		final.ToolInsights = map[string]interface{}{}
	}
	for name, res := range toolResults {
		final.ToolInsights[name] = res
	}
	if final.Artifacts == nil {
		final.Artifacts = []models.Artifact{}
	}

	// Artifact stage. Skipped entirely once the oracle is known down: every
	// generator call would only burn the cascade again.
	if !oracleDown && o.artifacts != nil {
		arts, err := o.artifacts.Generate(ctx, final, toolResults, inferred)
		if err != nil {
			o.logger.Printf("artifact generation failed: %v", err)
			arts = nil
		}
		for _, art := range arts {
			if id := o.completeArtifactSubTask(plan, art.Type); id > 0 {
				if !emit(models.Event{Type: models.EventSubTaskComplete, SubTaskID: id}) {
					return
				}
			}
			if !emit(models.Event{Type: models.EventArtifactReady, ArtifactType: art.Type, Artifact: &art}) {
				return
			}
			if err := o.store.AddArtifact(ctx, sessionID, art); err != nil {
				o.logger.Printf("persisting artifact failed: %v", err)
			}
			final.Artifacts = append(final.Artifacts, art)
		}
	}

	if err := o.store.AddPlan(ctx, sessionID, *final); err != nil {
		o.logger.Printf("persisting plan failed: %v", err)
	}

	outcome := "completed"
	if degraded {
		outcome = "fallback"
	}
	o.telemetry.RecordRun(outcome, time.Since(started))
	emit(models.Event{Type: models.EventResult, Plan: final, Data: map[string]interface{}{"session_id": sessionID, "degraded": degraded}})
}

// synthesize runs the synthesis + critic/replan cycle. Returns (nil, true)
// when the oracle went down mid-cycle and (nil, false) when every attempt
// produced unparseable output.
func (o *Orchestrator) synthesize(ctx context.Context, emit func(models.Event) bool,
	goal, domain, memorySummary, knowledgeBlock string,
	toolResults map[string]map[string]interface{}) (*models.SynthesizedPlan, bool) {

	var hints []string
	var candidate *models.SynthesizedPlan

	for attempt := 0; attempt <= o.cfg.MaxReplanAttempts; attempt++ {
		prompt := buildSynthesisPrompt(goal, domain, memorySummary, knowledgeBlock,
			toolResults, o.cfg.ToolResultCharBudget, hints)
		o.telemetry.RecordOracleRequest("synthesis")
		reply := o.gw.Generate(ctx, prompt)
		if !oracle.IsResponseOK(reply) {
			return candidate, candidate == nil
		}

		var sp models.SynthesizedPlan
		if err := extractJSON(reply, &sp); err != nil {
			o.logger.Printf("unparsable synthesis attempt %d: %v", attempt+1, err)
			continue
		}
		candidate = &sp

		o.telemetry.RecordOracleRequest("critic")
		verdict := critique(ctx, o.gw, o.logger, candidate, goal, domain)
		o.telemetry.RecordCriticVerdict(verdict.Passed)
		passed := verdict.Passed
		verdictLabel := "APPROVED"
		if !passed {
			verdictLabel = "REVISE"
		}
		if !emit(models.Event{Type: models.EventCritic, Scores: verdict.Scores, Passed: &passed, Verdict: verdictLabel, Content: strings.Join(verdict.Hints, "; ")}) {
			return candidate, false
		}
		if passed || attempt == o.cfg.MaxReplanAttempts {
			break
		}
		hints = verdict.Hints
	}
	return candidate, false
}

// writeBackProfile persists profile-relevant inferred fields.
func (o *Orchestrator) writeBackProfile(ctx context.Context, sessionID string, inferred map[string]interface{}) {
	updates := map[string]interface{}{}
	for _, key := range []string{"location", "target_role", "target_domain"} {
		if v, ok := inferred[key]; ok {
			if s, isStr := v.(string); !isStr || s != "" {
				updates[key] = v
			}
		}
	}
	if len(updates) == 0 {
		return
	}
	if err := o.store.UpdateProfile(ctx, sessionID, updates); err != nil {
		o.logger.Printf("profile write-back failed: %v", err)
	}
}

// markSubTask advances the first subtask for agentType that can legally take
// the transition. Returns the subtask id or 0.
func (o *Orchestrator) markSubTask(plan *models.ExecutionPlan, agentType, status string) int {
	for i := range plan.SubTasks {
		st := &plan.SubTasks[i]
		if st.AgentType != agentType {
			continue
		}
		if st.Status == models.SubTaskComplete || st.Status == models.SubTaskFailed {
			continue
		}
		st.Status = status
		return st.ID
	}
	return 0
}

func (o *Orchestrator) completeArtifactSubTask(plan *models.ExecutionPlan, artifactType string) int {
	for i := range plan.SubTasks {
		st := &plan.SubTasks[i]
		if st.AgentType == models.AgentTypeArtifactGenerator &&
			st.ExpectedArtifactType == artifactType &&
			st.Status == models.SubTaskPending {
			st.Status = models.SubTaskComplete
			return st.ID
		}
	}
	return 0
}

func subTaskInput(plan *models.ExecutionPlan, agentType string) map[string]interface{} {
	for _, st := range plan.SubTasks {
		if st.AgentType == agentType {
			return st.InputData
		}
	}
	return nil
}

func subTaskDescription(plan *models.ExecutionPlan, id int) string {
	for _, st := range plan.SubTasks {
		if st.ID == id {
			return st.Description
		}
	}
	return fmt.Sprintf("subtask %d", id)
}
