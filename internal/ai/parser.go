package ai

import (
	"encoding/json"
	"strings"

	"tripkit/internal/logger"
)

// ExtractJSONArray pulls a JSON array of objects out of a free-form vendor
// completion. Recovery steps, in order: strip whitespace, strip a markdown
// code fence if present, slice from the first '[' to the last ']', then
// decode. Anything that still fails yields an empty list, never an error.
// Single best-effort attempt; no retry.
func ExtractJSONArray(category, text string) []map[string]any {
	s := strings.TrimSpace(text)

	if strings.Contains(s, "```json") {
		parts := strings.SplitN(s, "```json", 2)
		s = strings.SplitN(parts[1], "```", 2)[0]
	} else if strings.Contains(s, "```") {
		parts := strings.Split(s, "```")
		if len(parts) >= 2 {
			s = parts[1]
		} else {
			s = strings.ReplaceAll(s, "```", "")
		}
	}

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start != -1 && end != -1 && end > start {
		s = s[start : end+1]
	}
	s = strings.TrimSpace(s)

	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		logger.GetLogger().Warnw("failed to parse vendor response", "category", category, "error", err, "snippet", snippet(s))
		return []map[string]any{}
	}

	list, ok := decoded.([]any)
	if !ok {
		logger.GetLogger().Warnw("vendor response is not an array", "category", category, "snippet", snippet(s))
		return []map[string]any{}
	}

	out := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func snippet(s string) string {
	const max = 200
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
