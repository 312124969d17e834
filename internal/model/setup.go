package model

import "strings"

// ResolveModels returns the configured variants with blanks and duplicates
// removed, or the tool's defaults when nothing usable was configured.
func ResolveModels(tool string, configured []string) []string {
	seen := make(map[string]bool, len(configured))
	var out []string
	for _, m := range configured {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	if len(out) == 0 {
		return DefaultModels(tool)
	}
	return out
}
