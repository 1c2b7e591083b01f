package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

// DecodeJSONField decodes a request field that may hold either native JSON or
// a JSON document encoded as a string, as sent by form-based admin clients:
//   - ["a.jpg"]        native value
//   - "[\"a.jpg\"]"    encoded string
//   - "{a: 1,}"-style  hand-typed text with surrounding noise or trailing commas
//
// Empty input and JSON null leave target untouched and return false.
func DecodeJSONField(raw json.RawMessage, target interface{}) (bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}

	if raw[0] != '"' {
		if err := json.Unmarshal(raw, target); err != nil {
			return false, fmt.Errorf("invalid JSON: %w", err)
		}
		return true, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return false, fmt.Errorf("invalid JSON string: %w", err)
	}
	text = strings.TrimSpace(strings.TrimPrefix(text, "\ufeff"))
	if text == "" {
		return false, nil
	}
	if err := ParseLenientJSON(text, target); err != nil {
		return false, err
	}
	return true, nil
}

// ParseLenientJSON parses JSON that may be surrounded by other text or
// contain trailing commas
func ParseLenientJSON(input string, target interface{}) error {
	if input == "" {
		return fmt.Errorf("empty input")
	}

	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if extracted := extractJSONFromText(input); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), target); err == nil {
			return nil
		}
		cleaned := trailingComma.ReplaceAllString(extracted, "$1")
		if err := json.Unmarshal([]byte(cleaned), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to parse JSON from input: %s", truncateString(input, 100))
}

// extractJSONFromText finds the first JSON array or object in text,
// whichever starts first
func extractJSONFromText(input string) string {
	obj := strings.Index(input, "{")
	arr := strings.Index(input, "[")

	if arr >= 0 && (obj < 0 || arr < obj) {
		if extracted := extractBalancedBraces(input[arr:], '[', ']'); extracted != "" {
			return extracted
		}
	}
	if obj >= 0 {
		if extracted := extractBalancedBraces(input[obj:], '{', '}'); extracted != "" {
			return extracted
		}
	}
	return ""
}

// extractBalancedBraces extracts content with balanced braces
func extractBalancedBraces(input string, open, close rune) string {
	if len(input) == 0 {
		return ""
	}

	depth := 0
	inString := false
	escape := false
	start := 0

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == close {
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}

	return ""
}

// truncateString truncates a string to maxLen bytes
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
