package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls a JSON array or object out of free-form model text.
// Fenced code blocks are preferred; otherwise the first balanced array or
// object substring is taken. Returns nil when no parseable JSON is found.
//
// "Here you go:\n```json\n[{...}]\n```" extracts the same payload as a bare
// "[{...}]" input.
func ExtractJSON(text string) json.RawMessage {
	// Fenced block first.
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate)
		}
	}

	// Whole response is already JSON.
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) && (strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{")) {
		return json.RawMessage(trimmed)
	}

	// First balanced array/object substring inside surrounding prose.
	for i := 0; i < len(text); i++ {
		if text[i] != '[' && text[i] != '{' {
			continue
		}
		if end := balancedEnd(text, i); end > 0 {
			candidate := text[i:end]
			if json.Valid([]byte(candidate)) {
				return json.RawMessage(candidate)
			}
		}
	}

	return nil
}

// balancedEnd returns the index just past the bracket that closes the JSON
// value starting at start, ignoring brackets inside string literals.
// Returns -1 when the value never closes.
func balancedEnd(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}
