package targets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeSuggestion strictly decodes the raw model output into a Suggestion.
// Generative services wrap JSON in markdown fences and occasionally return
// a different shape altogether; any mismatch here yields an error, which
// callers treat as "no suggestion" rather than a failure.
func DecodeSuggestion(raw []byte) (*Suggestion, error) {
	cleaned := stripMarkdownFences(raw)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty suggestion payload")
	}

	dec := json.NewDecoder(bytes.NewReader(cleaned))
	dec.DisallowUnknownFields()

	var sug Suggestion
	if err := dec.Decode(&sug); err != nil {
		return nil, fmt.Errorf("decode suggestion: %w", err)
	}
	// trailing garbage after the JSON object is a mismatch too
	if dec.More() {
		return nil, fmt.Errorf("decode suggestion: trailing data")
	}
	if sug.TargetCalories == nil && sug.TargetSteps == nil && sug.MacroSuggestion == nil {
		return nil, fmt.Errorf("suggestion carries no known fields")
	}
	return &sug, nil
}

func stripMarkdownFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return []byte(strings.TrimSpace(s))
}
