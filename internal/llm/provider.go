package llm

import "github.com/nulzo/aimind/internal/core/domain"

// Defaults are the values filled into a provider record left blank by the UI.
type Defaults struct {
	BaseURL string
	Model   string
}

// Dialect captures everything that differs between provider families:
// how a request is authenticated and where the reply text lives.
// Adding a provider family means registering one more Dialect.
type Dialect interface {
	Kind() string
	Defaults() Defaults
	// RequiresKey is false for local servers that accept anonymous calls.
	RequiresKey() bool
	Headers(p domain.ProviderConfig) map[string]string
	ExtractReply(body map[string]interface{}) (string, bool)
}
