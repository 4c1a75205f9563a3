package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse means no parseable JSON object was found in the
// model's output.
var ErrMalformedResponse = errors.New("llm: malformed response")

// ExtractJSONObject pulls the first well-formed JSON object out of a text
// blob. Models often wrap JSON in prose or markdown fences, so the heuristic
// slices from the first '{' to the last '}' and parses strictly. A stray
// brace pair in the surrounding commentary can fool it; tolerated.
func ExtractJSONObject(text string) (map[string]any, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return obj, nil
}
