package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// keys, string values, literals and numbers
var jsonTokenRegex = regexp.MustCompile(`("(\\u[a-zA-Z0-9]{4}|\\[^u]|[^\\"])*"(\s*:)?|\b(true|false|null)\b|-?\d+(?:\.\d*)?(?:[eE][+\-]?\d+)?)`)

// HighlightJSON applies ANSI colors to a JSON string.
func HighlightJSON(jsonStr string) string {
	if !colorEnabled {
		return jsonStr
	}

	return jsonTokenRegex.ReplaceAllStringFunc(jsonStr, func(token string) string {
		switch {
		case strings.HasSuffix(token, ":"):
			return Blue + token[:len(token)-1] + Reset + ":"
		case strings.HasPrefix(token, "\""):
			return Green + token + Reset
		case token == "true" || token == "false":
			return Yellow + token + Reset
		case token == "null":
			return Dim + token + Reset
		default:
			return Purple + token + Reset
		}
	})
}

// PrettyFormat indents v as JSON and colorizes it. Raw bytes and strings are
// re-indented when they hold valid JSON and printed as-is otherwise.
func PrettyFormat(v interface{}) string {
	var raw []byte
	switch t := v.(type) {
	case []byte:
		raw = t
	case json.RawMessage:
		raw = t
	case string:
		raw = []byte(t)
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("%+v", v)
		}
		return HighlightJSON(string(b))
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return HighlightJSON(buf.String())
}

// PrettyPrint writes the formatted value followed by a newline.
func PrettyPrint(w io.Writer, v interface{}) {
	fmt.Fprintln(w, PrettyFormat(v))
}
