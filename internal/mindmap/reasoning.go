package mindmap

import "strings"

const (
	thinkStart = "<think>"
	thinkEnd   = "</think>"
)

// SplitReasoning separates <think>...</think> blocks emitted by reasoning
// models (deepseek-reasoner, r1 builds served by ollama) from the answer.
// An unterminated block swallows the rest of the text.
func SplitReasoning(text string) (content, reasoning string) {
	if !strings.Contains(text, thinkStart) {
		return text, ""
	}

	var c, r strings.Builder
	for text != "" {
		start := strings.Index(text, thinkStart)
		if start == -1 {
			c.WriteString(text)
			break
		}
		c.WriteString(text[:start])
		text = text[start+len(thinkStart):]

		end := strings.Index(text, thinkEnd)
		if end == -1 {
			r.WriteString(text)
			break
		}
		r.WriteString(text[:end])
		text = text[end+len(thinkEnd):]
	}

	return c.String(), r.String()
}
