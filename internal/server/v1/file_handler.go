package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/aimind/pkg/api"
)

// SaveMindmap writes a document to the given path.
//
// POST /api/v1/files/save
func (h *Handler) SaveMindmap(c *gin.Context) {
	var req api.SaveFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	path, err := h.service.SaveMindmap(c.Request.Context(), req.Data, req.Path)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.SaveFileResponse{Path: path})
}

// LoadMindmap returns the stored document as-is.
//
// POST /api/v1/files/load
func (h *Handler) LoadMindmap(c *gin.Context) {
	var req api.LoadFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	doc, err := h.service.LoadMindmap(c.Request.Context(), req.Path)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

// GET /api/v1/files/recent
func (h *Handler) RecentFiles(c *gin.Context) {
	files, err := h.service.RecentFiles(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := api.RecentFilesResponse{Files: make([]api.RecentFile, 0, len(files))}
	for _, f := range files {
		resp.Files = append(resp.Files, api.RecentFile{
			Path:     f.Path,
			Title:    f.Title,
			OpenedAt: f.OpenedAt,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveRecentFile forgets one path.
//
// DELETE /api/v1/files/recent
func (h *Handler) RemoveRecentFile(c *gin.Context) {
	var req api.RemoveRecentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	if err := h.service.RemoveRecentFile(c.Request.Context(), req.Path); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DELETE /api/v1/files/recent/all
func (h *Handler) ClearRecentFiles(c *gin.Context) {
	if err := h.service.ClearRecentFiles(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
