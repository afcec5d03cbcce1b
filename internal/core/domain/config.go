package domain

const (
	DefaultProviderID  = "openai-default"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
)

// ProviderConfig represents the configuration for a single AI provider.
type ProviderConfig struct {
	ID          string   `json:"id" binding:"required" validate:"required"`
	Name        string   `json:"name"`
	Kind        string   `json:"type" binding:"required" validate:"required"`
	APIKey      string   `json:"api_key"`
	BaseURL     string   `json:"base_url" binding:"omitempty,url" validate:"omitempty,url"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature,omitempty" binding:"omitempty,gte=0,lte=2" validate:"omitempty,gte=0,lte=2"`
	MaxTokens   *int     `json:"max_tokens,omitempty" binding:"omitempty,gt=0" validate:"omitempty,gt=0"`
	Enabled     bool     `json:"enabled"`
}

// TemperatureOrDefault returns the configured temperature or 0.7.
func (p ProviderConfig) TemperatureOrDefault() float64 {
	if p.Temperature == nil {
		return DefaultTemperature
	}
	return *p.Temperature
}

// MaxTokensOrDefault returns the configured token limit or 2000.
func (p ProviderConfig) MaxTokensOrDefault() int {
	if p.MaxTokens == nil {
		return DefaultMaxTokens
	}
	return *p.MaxTokens
}

// AIConfig is the persisted root document. Provider order is significant:
// the first entry is the fallback when the current provider is removed.
type AIConfig struct {
	Providers       []ProviderConfig `json:"providers"`
	CurrentProvider string           `json:"current_provider"`
}

// DefaultAIConfig is the document written on first run.
func DefaultAIConfig() AIConfig {
	temperature := DefaultTemperature
	maxTokens := DefaultMaxTokens
	return AIConfig{
		Providers: []ProviderConfig{
			{
				ID:          DefaultProviderID,
				Name:        "OpenAI",
				Kind:        "openai",
				APIKey:      "",
				BaseURL:     "https://api.openai.com/v1",
				Model:       "gpt-4o-mini",
				Temperature: &temperature,
				MaxTokens:   &maxTokens,
				Enabled:     true,
			},
		},
		CurrentProvider: DefaultProviderID,
	}
}

// Find returns the index of the provider with the given id, or -1.
func (c *AIConfig) Find(id string) int {
	for i, p := range c.Providers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Provider returns a copy of the provider with the given id.
func (c *AIConfig) Provider(id string) (ProviderConfig, bool) {
	if i := c.Find(id); i >= 0 {
		return c.Providers[i], true
	}
	return ProviderConfig{}, false
}
