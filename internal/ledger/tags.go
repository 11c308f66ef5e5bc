package ledger

import "strings"

// NormalizeTags trims each comma separated tag, drops empties and duplicates
// (case-insensitive, first spelling wins) and joins the rest with ",".
func NormalizeTags(raw string) string {
	seen := map[string]bool{}
	var out []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return strings.Join(out, ",")
}

// SplitTags is the inverse of NormalizeTags.
func SplitTags(stored string) []string {
	normalized := NormalizeTags(stored)
	if normalized == "" {
		return []string{}
	}
	return strings.Split(normalized, ",")
}
