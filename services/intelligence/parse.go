package ai

import (
	"encoding/json"
	"strings"
)

// extractJSON strips markdown code fences and surrounding prose the model
// sometimes adds despite instructions, returning the first top-level JSON
// object in the reply.
func extractJSON(reply string) string {
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, "```") {
		reply = strings.TrimPrefix(reply, "```json")
		reply = strings.TrimPrefix(reply, "```")
		if idx := strings.Index(reply, "```"); idx >= 0 {
			reply = reply[:idx]
		}
		reply = strings.TrimSpace(reply)
	}

	start := strings.Index(reply, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(reply); i++ {
		c := reply[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '{':
			depth++
		case !inString && c == '}':
			depth--
			if depth == 0 {
				return reply[start : i+1]
			}
		}
	}
	return ""
}

// decodeReply parses the model's structured reply into out. It returns false
// when the reply holds no parseable JSON object, which callers treat as a
// degrade-to-raw-text case rather than an error.
func decodeReply(reply string, out interface{}) bool {
	raw := extractJSON(reply)
	if raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}
