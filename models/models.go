package models

import (
	"time"

	"github.com/google/uuid"
)

// IntentProfile classifies a raw user goal into plan type, urgency, and the
// capabilities and artifacts a run is expected to produce. Created once per
// goal and read-only afterwards.
type IntentProfile struct {
	PlanType          string   `json:"plan_type"`
	Urgency           string   `json:"urgency"`
	SubIntents        []string `json:"sub_intents"`
	RequiredAgents    []string `json:"required_agents"`
	RequiredArtifacts []string `json:"required_artifacts"`
	Domain            string   `json:"domain"`
	RawGoal           string   `json:"raw_goal"`
}

// SubTask statuses.
const (
	SubTaskPending  = "pending"
	SubTaskActive   = "active"
	SubTaskComplete = "complete"
	SubTaskFailed   = "failed"
)

// AgentTypeArtifactGenerator marks subtasks that run after synthesis.
const AgentTypeArtifactGenerator = "artifact_generator"

// SubTask is one unit of decomposed work. Tool subtasks map to a capability
// name; artifact subtasks carry the expected artifact type.
type SubTask struct {
	ID                   int                    `json:"id"`
	Description          string                 `json:"description"`
	AgentType            string                 `json:"agent_type"`
	InputData            map[string]interface{} `json:"input_data"`
	ExpectedArtifactType string                 `json:"expected_artifact_type,omitempty"`
	Status               string                 `json:"status"`
}

// ExecutionPlan binds a session to its intent and ordered subtasks. Owned by
// exactly one planning run.
type ExecutionPlan struct {
	SessionID string        `json:"session_id"`
	Intent    IntentProfile `json:"intent"`
	SubTasks  []SubTask     `json:"subtasks"`
	CreatedAt time.Time     `json:"created_at"`
}

// Subgoal is one entry of a plan's goal decomposition.
type Subgoal struct {
	ID       int    `json:"id"`
	Subgoal  string `json:"subgoal"`
	Why      string `json:"why"`
	Timeline string `json:"timeline"`
}

// ImmediateAction is a this-week action with the resource to use and the
// outcome it buys.
type ImmediateAction struct {
	Action          string `json:"action"`
	Resource        string `json:"resource"`
	ExpectedOutcome string `json:"expected_outcome"`
}

// RoadmapPhase is one phase of the 30-60-90 day roadmap.
type RoadmapPhase struct {
	Phase           string   `json:"phase"`
	Focus           string   `json:"focus"`
	Milestones      []string `json:"milestones"`
	ResourcesNeeded []string `json:"resources_needed"`
}

// Resource points at a scheme, platform, or contact the user should use.
type Resource struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	URLOrContact string `json:"url_or_contact"`
	HowItHelps   string `json:"how_it_helps"`
}

// Risk pairs a failure scenario with its mitigation.
type Risk struct {
	Risk       string `json:"risk"`
	Mitigation string `json:"mitigation"`
}

// SynthesizedPlan is the final structured strategic plan delivered to the
// caller. Fallback plans are complete values of this type, so consumers never
// special-case the degraded path.
type SynthesizedPlan struct {
	Goal              string                 `json:"goal"`
	Domain            string                 `json:"domain"`
	ExecutiveSummary  string                 `json:"executive_summary"`
	SituationAnalysis string                 `json:"situation_analysis"`
	Subgoals          []Subgoal              `json:"subgoals"`
	ImmediateActions  []ImmediateAction      `json:"immediate_actions"`
	Roadmap           []RoadmapPhase         `json:"roadmap"`
	KeyResources      []Resource             `json:"key_resources"`
	RiskMitigation    []Risk                 `json:"risk_mitigation"`
	SuccessMetrics    []string               `json:"success_metrics"`
	ToolInsights      map[string]interface{} `json:"tool_insights"`
	Intent            *IntentProfile         `json:"intent,omitempty"`
	Artifacts         []Artifact             `json:"artifacts"`
}

// Artifact is a generated output document attached to a session.
type Artifact struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Domain    string                 `json:"domain"`
	Content   string                 `json:"content"`
	Format    string                 `json:"format"`
	CreatedAt time.Time              `json:"created_at"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewArtifact builds an artifact with a fresh id and timestamp.
func NewArtifact(artifactType, title, domain, content string, metadata map[string]interface{}) Artifact {
	return Artifact{
		ID:        uuid.NewString(),
		Type:      artifactType,
		Title:     title,
		Domain:    domain,
		Content:   content,
		Format:    "markdown",
		CreatedAt: time.Now().UTC(),
		Metadata:  metadata,
	}
}

// Event types emitted over a run's progress stream.
const (
	EventSession         = "session"
	EventThinking        = "thinking"
	EventActing          = "acting"
	EventToolResult      = "tool_result"
	EventIntentAnalyzed  = "intent_analyzed"
	EventPlanDecomposed  = "plan_decomposed"
	EventSubTaskStart    = "subtask_start"
	EventSubTaskComplete = "subtask_complete"
	EventCritic          = "critic"
	EventArtifactReady   = "artifact_ready"
	EventResult          = "result"
	EventError           = "error"
	EventDone            = "done"
)

// Event is one typed progress update. Exactly one terminal event (result or
// error) closes every run's stream, in strict chronological order.
type Event struct {
	Type         string                 `json:"type"`
	Content      string                 `json:"content,omitempty"`
	Tool         string                 `json:"tool,omitempty"`
	Data         map[string]interface{} `json:"data,omitempty"`
	Intent       *IntentProfile         `json:"intent,omitempty"`
	SubTasks     []SubTask              `json:"subtasks,omitempty"`
	SubTaskID    int                    `json:"subtask_id,omitempty"`
	Description  string                 `json:"description,omitempty"`
	ArtifactType string                 `json:"artifact_type,omitempty"`
	Scores       map[string]float64     `json:"scores,omitempty"`
	Passed       *bool                  `json:"passed,omitempty"`
	Verdict      string                 `json:"verdict,omitempty"`
	Artifact     *Artifact              `json:"artifact,omitempty"`
	Plan         *SynthesizedPlan       `json:"plan,omitempty"`
}

// GoalEntry records one goal submitted in a session.
type GoalEntry struct {
	Goal      string    `json:"goal"`
	Domain    string    `json:"domain"`
	Timestamp time.Time `json:"timestamp"`
}

// PlanEntry records one generated plan in a session.
type PlanEntry struct {
	Plan      SynthesizedPlan `json:"plan"`
	Timestamp time.Time       `json:"timestamp"`
}

// Session is the per-user persistent memory blob.
type Session struct {
	SessionID   string                 `json:"session_id"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	UserProfile map[string]interface{} `json:"user_profile"`
	GoalHistory []GoalEntry            `json:"goal_history"`
	PlanHistory []PlanEntry            `json:"plan_history"`
	Preferences map[string]interface{} `json:"preferences"`
	Artifacts   []Artifact             `json:"artifacts"`
}

// NewSession returns an empty session shell for an id.
func NewSession(sessionID string) *Session {
	return &Session{
		SessionID:   sessionID,
		CreatedAt:   time.Now().UTC(),
		UserProfile: map[string]interface{}{},
		GoalHistory: []GoalEntry{},
		PlanHistory: []PlanEntry{},
		Preferences: map[string]interface{}{},
		Artifacts:   []Artifact{},
	}
}
