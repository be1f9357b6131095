package llm

import "strings"

// Models routinely wrap JSON in markdown code fences despite instructions
// not to. StripFences removes a leading fence (with or without a language
// tag) and a trailing fence so the payload can be parsed.
func StripFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = s[3:]
		// Drop a language tag like "json" on the opening fence.
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			firstLine := strings.TrimSpace(s[:idx])
			if firstLine == "json" || firstLine == "" {
				s = s[idx+1:]
			}
		} else {
			s = strings.TrimPrefix(strings.TrimSpace(s), "json")
		}
	}

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}

	return strings.TrimSpace(s)
}

// StripEmphasis removes markdown bold/emphasis markers from prose fields.
// Applied unconditionally to summary and analogy text before they reach
// the response.
func StripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	return strings.TrimSpace(s)
}
