// Package slug normalizes display names into URL path segments.
package slug

import "strings"

// Make lowercases s and collapses every run of characters outside [a-z0-9]
// into a single hyphen, trimming hyphens at either end.
//
// Make is idempotent: Make(Make(s)) == Make(s).
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		// Apostrophes join rather than split: "Ja'Marr" -> "jamarr".
		if r == '\'' || r == '’' {
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
