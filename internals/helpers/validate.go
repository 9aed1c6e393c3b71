package helper

import (
	"strings"

	"github.com/bytedance/sonic"
)

// RequireJSONFields checks a raw JSON request body for the given required
// fields. A field is missing when the key is absent, null, or (for strings)
// empty/whitespace-only. Returns a message naming every missing field, or ""
// when all are present.
func RequireJSONFields(body []byte, required ...string) string {
	var m map[string]any
	if err := sonic.Unmarshal(body, &m); err != nil {
		m = nil
	}

	var missing []string
	for _, key := range required {
		val, ok := m[key]
		if !ok || val == nil {
			missing = append(missing, key)
			continue
		}
		if s, isStr := val.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return "Missing required field(s): " + strings.Join(missing, ", ")
	}
	return ""
}
