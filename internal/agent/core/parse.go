package core

import (
	"encoding/json"
	"strings"
)

// extractJSON strips optional markdown code fences and decodes the result
// into out. Oracle replies wrap JSON in ```json fences often enough that
// every parse site goes through here.
func extractJSON(raw string, out interface{}) error {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if i := strings.LastIndex(cleaned, "```"); i >= 0 {
			cleaned = cleaned[:i]
		}
		cleaned = strings.TrimSpace(cleaned)
	}
	return json.Unmarshal([]byte(cleaned), out)
}

// truncate bounds a tool result's rendering inside a prompt.
func truncate(s string, budget int) string {
	if budget <= 0 || len(s) <= budget {
		return s
	}
	return s[:budget] + "... [truncated]"
}
