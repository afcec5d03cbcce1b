package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/aimind/internal/core/domain"
	"github.com/nulzo/aimind/pkg/api"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error attached by a handler as an RFC 9457
// problem document.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		problem := ToProblem(c.Errors.Last().Err)
		problem.Instance = c.Request.URL.Path

		if problem.Log != nil {
			logger.Error("Request failed",
				zap.Int("status", problem.Status),
				zap.String("path", problem.Instance),
				zap.Error(problem.Log),
			)
		}

		// RFC 9457 dictates the json is at the root
		c.Header("Content-Type", "application/problem+json")
		c.AbortWithStatusJSON(problem.Status, problem)
	}
}

// ToProblem maps a command error onto its HTTP representation.
func ToProblem(err error) *api.Problem {
	var problem *api.Problem
	if errors.As(err, &problem) {
		return problem
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		return api.InternalError("An unexpected error occurred.", err)
	}

	switch de.Kind {
	case domain.KindValidation:
		return api.BadRequestError(de.Message)
	case domain.KindNotFound:
		return api.NotFoundError(de.Message)
	case domain.KindParse:
		return api.UnprocessableError(de.Message, de.Err)
	case domain.KindUpstream:
		return api.BadGatewayError(de.Message,
			api.WithExtension("upstream_status", de.Status),
			api.WithExtension("upstream_body", de.Body),
		)
	case domain.KindEmptyResponse:
		return api.BadGatewayError(de.Message)
	case domain.KindTransport:
		return api.BadGatewayError(de.Message, api.WithLog(de))
	case domain.KindIO:
		return api.InternalError(de.Message, de)
	default:
		return api.InternalError(http.StatusText(http.StatusInternalServerError), de)
	}
}
