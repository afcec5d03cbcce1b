package mindmap

import (
	"encoding/json"
	"strings"
)

// ParseSuggestions turns a model reply into child topics. A JSON array of
// strings wins when it yields at least one entry; otherwise every non-blank
// trimmed line is a topic. Reasoning blocks are dropped first.
func ParseSuggestions(reply string) []string {
	reply, _ = SplitReasoning(reply)
	if nodes := parseJSONArray(reply); len(nodes) > 0 {
		return nodes
	}
	return splitLines(reply)
}

func parseJSONArray(reply string) []string {
	var items []interface{}
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &items); err != nil {
		return nil
	}

	nodes := make([]string, 0, len(items))
	for _, item := range items {
		// non-string elements are skipped, not stringified
		if s, ok := item.(string); ok {
			nodes = append(nodes, s)
		}
	}
	return nodes
}

func splitLines(reply string) []string {
	nodes := []string{}
	for _, line := range strings.Split(reply, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			nodes = append(nodes, line)
		}
	}
	return nodes
}

// stripCodeFence unwraps ```json ... ``` blocks models like to emit.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	// drop the language tag on the opening fence line
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
