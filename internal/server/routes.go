package server

import (
	"github.com/nulzo/aimind/internal/server/middleware"
	v1 "github.com/nulzo/aimind/internal/server/v1"
)

func (s *Server) SetupRoutes() {
	s.router.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.router.Use(middleware.ErrorHandler(s.logger))

	healthHandler := v1.NewHealthHandler(s.version)
	s.router.GET("/health", healthHandler.Health)

	h := v1.NewHandler(s.service, s.validator)
	api := s.router.Group("/api/v1")

	ai := api.Group("/ai")
	if s.config.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(s.config.RateLimit.RequestsPerSecond, s.config.RateLimit.Burst, s.logger)
		ai.Use(limiter.Middleware())
	}
	{
		ai.POST("/chat", h.Chat)
		ai.POST("/expand", h.ExpandNode)
		ai.POST("/analyze", h.AnalyzeMindmap)
	}

	configs := api.Group("/configs")
	{
		configs.GET("", h.GetConfigs)
		configs.PUT("/providers", h.SaveProviderConfig)
		configs.DELETE("/providers/:id", h.DeleteProviderConfig)
		configs.PUT("/current", h.SetCurrentProvider)
	}

	files := api.Group("/files")
	{
		files.POST("/save", h.SaveMindmap)
		files.POST("/load", h.LoadMindmap)
		files.GET("/recent", h.RecentFiles)
		files.DELETE("/recent", h.RemoveRecentFile)
		files.DELETE("/recent/all", h.ClearRecentFiles)
	}
}
