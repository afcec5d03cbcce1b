package mindmap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/nulzo/aimind/internal/core/domain"
)

// SaveDocument writes data as indented JSON to path and returns the path.
// data is opaque; it is re-indented but otherwise written verbatim.
func SaveDocument(data json.RawMessage, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", domain.ValidationError("file path required")
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return "", domain.ParseError("failed to serialize", err)
	}

	if err := os.WriteFile(path, pretty.Bytes(), 0o644); err != nil {
		return "", domain.IOError("failed to write", err)
	}
	return path, nil
}

// LoadDocument reads and validates the JSON document at path.
func LoadDocument(path string) (json.RawMessage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, domain.ValidationError("file path required")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.IOError("failed to read", err)
	}

	var parsed interface{}
	if err := json.Unmarshal(content, &parsed); err != nil {
		return nil, domain.ParseError("failed to parse", err)
	}
	return json.RawMessage(content), nil
}

// Title derives a display title from a document path.
func Title(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
