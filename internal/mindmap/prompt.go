package mindmap

import "fmt"

const expandTemplate = `You are a mind-map assistant. The user selected the node "%s".
Generate 4-6 valuable child nodes that expand this topic.
Requirements:
1. Keep each child node short, no more than 10 words
2. Be logically clear and cover the main aspects
3. Reply with a JSON array only, for example: ["Child 1", "Child 2", ...]`

// ExpandPrompt builds the prompt asking for child topics of nodeContent.
func ExpandPrompt(nodeContent string) string {
	return fmt.Sprintf(expandTemplate, nodeContent)
}
