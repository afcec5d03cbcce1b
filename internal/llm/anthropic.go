package llm

import "github.com/nulzo/aimind/internal/core/domain"

const anthropicVersion = "2023-06-01"

func init() {
	Register(&anthropicDialect{})
}

type anthropicDialect struct{}

func (d *anthropicDialect) Kind() string      { return "anthropic" }
func (d *anthropicDialect) RequiresKey() bool { return true }

func (d *anthropicDialect) Defaults() Defaults {
	return Defaults{BaseURL: "https://api.anthropic.com/v1", Model: "claude-3-5-sonnet-20241022"}
}

// Headers never includes a bearer token.
func (d *anthropicDialect) Headers(p domain.ProviderConfig) map[string]string {
	return map[string]string{
		"x-api-key":         p.APIKey,
		"anthropic-version": anthropicVersion,
	}
}

// ExtractReply reads content[0].text.
func (d *anthropicDialect) ExtractReply(body map[string]interface{}) (string, bool) {
	content, ok := body["content"].([]interface{})
	if !ok || len(content) == 0 {
		return "", false
	}
	block, ok := content[0].(map[string]interface{})
	if !ok {
		return "", false
	}
	text, ok := block["text"].(string)
	return text, ok
}
