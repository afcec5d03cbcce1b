package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/aimind/pkg/api"
)

// GetConfigs returns the whole provider document.
//
// GET /api/v1/configs
func (h *Handler) GetConfigs(c *gin.Context) {
	cfg, err := h.service.GetConfigs(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// SaveProviderConfig inserts or replaces a provider by id.
//
// PUT /api/v1/configs/providers
func (h *Handler) SaveProviderConfig(c *gin.Context) {
	var req api.ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	if err := h.service.SaveProviderConfig(c.Request.Context(), req); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DELETE /api/v1/configs/providers/:id
func (h *Handler) DeleteProviderConfig(c *gin.Context) {
	if err := h.service.DeleteProviderConfig(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PUT /api/v1/configs/current
func (h *Handler) SetCurrentProvider(c *gin.Context) {
	var req api.SetCurrentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	if err := h.service.SetCurrentProvider(c.Request.Context(), req.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
