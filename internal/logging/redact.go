package logging

import "strings"

const redactedPlaceholder = "***REDACTED***"

// Any key whose lowercased name contains one of these substrings has its
// value replaced before the structure is logged.
var sensitiveKeys = []string{"password", "token", "authorization", "secret", "key"}

// Redact walks a decoded JSON value and replaces every entry under a
// sensitive key with a placeholder. Nested objects and arrays are walked
// recursively; scalars pass through untouched. The input is not mutated.
func Redact(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			if isSensitiveKey(key) {
				out[key] = redactedPlaceholder
				continue
			}
			out[key] = Redact(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = Redact(inner)
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}
