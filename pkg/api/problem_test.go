package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblem_MarshalFlattensExtensions(t *testing.T) {
	p := BadGatewayError("API error (401): nope",
		WithExtension("upstream_status", 401),
		WithExtension("status", 999),
		WithInstance("/api/v1/ai/chat"),
	)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "about:blank", out["type"])
	assert.Equal(t, "Bad Gateway", out["title"])
	assert.Equal(t, float64(http.StatusBadGateway), out["status"])
	assert.Equal(t, float64(401), out["upstream_status"])
	assert.Equal(t, "/api/v1/ai/chat", out["instance"])
}

func TestProblem_LogIsNotSerialized(t *testing.T) {
	p := InternalError("failed to read config", errors.New("permission denied"))

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "permission denied")
	assert.EqualError(t, p.Log, "permission denied")
	assert.Equal(t, "[500] Internal Server Error: failed to read config", p.Error())
}

func TestValidationError(t *testing.T) {
	p := ValidationError(map[string]string{"prompt": "prompt is a required field"})

	assert.Equal(t, http.StatusBadRequest, p.Status)
	assert.Equal(t, map[string]string{"prompt": "prompt is a required field"}, p.Extensions["errors"])
}
