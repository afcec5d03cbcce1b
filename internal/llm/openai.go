package llm

import "github.com/nulzo/aimind/internal/core/domain"

func init() {
	Register(&openAIDialect{kind: "openai", defaults: Defaults{BaseURL: "https://api.openai.com/v1", Model: "gpt-4o-mini"}})
	Register(&openAIDialect{kind: "deepseek", defaults: Defaults{BaseURL: "https://api.deepseek.com/v1", Model: "deepseek-chat"}})
	Register(&openAIDialect{kind: "ollama", defaults: Defaults{BaseURL: "http://localhost:11434/v1", Model: "llama3.2"}, keyOptional: true})
	Register(&openAIDialect{kind: "custom"})
}

// openAIDialect serves every OpenAI-compatible endpoint.
type openAIDialect struct {
	kind     string
	defaults Defaults
	// local servers run without a key; skip the header instead of sending "Bearer "
	keyOptional bool
}

func (d *openAIDialect) Kind() string       { return d.kind }
func (d *openAIDialect) Defaults() Defaults { return d.defaults }
func (d *openAIDialect) RequiresKey() bool   { return !d.keyOptional }

func (d *openAIDialect) Headers(p domain.ProviderConfig) map[string]string {
	if d.keyOptional && p.APIKey == "" {
		return map[string]string{}
	}
	return map[string]string{
		"Authorization": "Bearer " + p.APIKey,
	}
}

// ExtractReply reads choices[0].message.content.
func (d *openAIDialect) ExtractReply(body map[string]interface{}) (string, bool) {
	choices, ok := body["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", false
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", false
	}
	content, ok := message["content"].(string)
	return content, ok
}
