package api

import (
	"encoding/json"

	"github.com/nulzo/aimind/internal/core/domain"
)

// ChatRequest sends a single prompt, passed through as-is (an empty prompt
// included). An empty provider_id means the current provider.
type ChatRequest struct {
	Prompt     string `json:"prompt"`
	ProviderID string `json:"provider_id"`
}

type ExpandRequest struct {
	NodeContent string `json:"node_content" binding:"required"`
	ProviderID  string `json:"provider_id"`
}

type AnalyzeRequest struct {
	Data       json.RawMessage `json:"data"`
	ProviderID string          `json:"provider_id"`
}

// ProviderRequest is the body of a provider upsert.
type ProviderRequest = domain.ProviderConfig

type SetCurrentRequest struct {
	ID string `json:"id" binding:"required"`
}

type SaveFileRequest struct {
	Data json.RawMessage `json:"data" binding:"required"`
	Path string          `json:"path" binding:"required"`
}

type LoadFileRequest struct {
	Path string `json:"path" binding:"required"`
}

type RemoveRecentRequest struct {
	Path string `json:"path" binding:"required"`
}
