package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/aimind/pkg/api"
)

// Chat sends one prompt to a provider.
//
// POST /api/v1/ai/chat
func (h *Handler) Chat(c *gin.Context) {
	var req api.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	content, err := h.service.Chat(c.Request.Context(), req.Prompt, req.ProviderID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.ChatResponse{Content: content})
}

// ExpandNode asks a provider for child topics of a node.
//
// POST /api/v1/ai/expand
func (h *Handler) ExpandNode(c *gin.Context) {
	var req api.ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	nodes, err := h.service.ExpandNode(c.Request.Context(), req.NodeContent, req.ProviderID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.ExpandResponse{Nodes: nodes})
}

// POST /api/v1/ai/analyze
func (h *Handler) AnalyzeMindmap(c *gin.Context) {
	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	result, err := h.service.AnalyzeMindmap(c.Request.Context(), req.Data, req.ProviderID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
