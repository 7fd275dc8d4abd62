package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/she-oracle/orchestrator/models"
)

// Decompose expands an intent profile into an ordered execution plan: one
// capability subtask per required capability, then one artifact subtask per
// required artifact type, ids assigned from 1. Pure function, no oracle
// calls.
func Decompose(intent models.IntentProfile, sessionID string, inferred map[string]interface{}) *models.ExecutionPlan {
	subtasks := make([]models.SubTask, 0, len(intent.RequiredAgents)+len(intent.RequiredArtifacts))
	id := 1

	for _, agent := range intent.RequiredAgents {
		subtasks = append(subtasks, models.SubTask{
			ID:          id,
			Description: fmt.Sprintf("Run %s for: %s", agent, intent.RawGoal),
			AgentType:   agent,
			InputData:   inputFor(agent, intent, inferred),
			Status:      models.SubTaskPending,
		})
		id++
	}

	for _, artifactType := range intent.RequiredArtifacts {
		subtasks = append(subtasks, models.SubTask{
			ID:                   id,
			Description:          fmt.Sprintf("Generate %s artifact", artifactType),
			AgentType:            models.AgentTypeArtifactGenerator,
			InputData:            map[string]interface{}{"goal": intent.RawGoal, "domain": intent.Domain},
			ExpectedArtifactType: artifactType,
			Status:               models.SubTaskPending,
		})
		id++
	}

	return &models.ExecutionPlan{
		SessionID: sessionID,
		Intent:    intent,
		SubTasks:  subtasks,
		CreatedAt: time.Now().UTC(),
	}
}

// inputFor builds the capability-specific input payload. Inferred context
// values are preferred; the raw goal is the default.
func inputFor(agent string, intent models.IntentProfile, inferred map[string]interface{}) map[string]interface{} {
	input := map[string]interface{}{
		"goal":   intent.RawGoal,
		"domain": intent.Domain,
	}
	pick := func(key string, def interface{}) interface{} {
		if inferred != nil {
			if v, ok := inferred[key]; ok && v != nil && v != "" {
				return v
			}
		}
		return def
	}

	switch agent {
	case "resume_analyzer":
		input["resume_text"] = pick("resume_text", intent.RawGoal)
		input["target_role"] = pick("target_role", "")
		input["location"] = pick("location", "India")
	case "legal_rights_checker":
		input["situation"] = intent.RawGoal
		input["situation_type"] = pick("situation_type", "workplace")
	case "income_projection":
		input["current_skills"] = pick("current_skills", intent.RawGoal)
		input["current_income"] = pick("current_income", 0)
		input["target_domain"] = pick("target_domain", intent.Domain)
		input["location"] = pick("location", "India")
	case "risk_assessment":
		input["plan"] = intent.RawGoal
		input["plan_type"] = intent.PlanType
		input["budget"] = pick("budget", "")
	case "grant_finder":
		input["location"] = pick("location", "India")
		input["category"] = intent.Domain
	}
	return input
}

// Guidance renders the soft tool-ordering hint injected into the reasoning
// prompt. Advisory only; the loop never enforces it. Empty when the plan has
// no capability subtasks.
func Guidance(plan *models.ExecutionPlan) string {
	var lines []string
	n := 1
	for _, st := range plan.SubTasks {
		if st.AgentType == models.AgentTypeArtifactGenerator {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d. %s", n, st.AgentType))
		n++
	}
	if len(lines) == 0 {
		return ""
	}
	return "Recommended tool sequence based on intent analysis:\n" +
		strings.Join(lines, "\n") +
		"\nYou may call tools in a different order if your reasoning justifies it."
}
