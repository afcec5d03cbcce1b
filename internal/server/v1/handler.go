package v1

import (
	"github.com/nulzo/aimind/internal/commands"
	"github.com/nulzo/aimind/internal/server/validator"
)

// Handler adapts the command surface to HTTP.
type Handler struct {
	service   commands.Service
	validator *validator.Validator
}

func NewHandler(service commands.Service, v *validator.Validator) *Handler {
	return &Handler{
		service:   service,
		validator: v,
	}
}
