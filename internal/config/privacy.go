package config

import "strings"

// DefaultWarnPatterns returns substrings that suggest a note contains
// personal information. Saving text that matches one of these is blocked
// unless the user explicitly forces it.
func DefaultWarnPatterns() []string {
	return []string{
		"住所",
		"電話",
		"tel",
		"メール",
		"mail",
		"@",
		"instagram",
		"twitter",
		"x.com",
		"line",
		"学校",
		"本名",
	}
}

// LooksSensitive reports whether text matches any of the configured privacy
// warning patterns. Matching is case-insensitive substring containment.
func (c *Config) LooksSensitive(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range c.Privacy.WarnPatterns {
		if p == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
