package note

import "strings"

// FormatIdeas normalizes a raw model response into a bullet list. Lines
// are trimmed, blank lines dropped, a "- " prefix added where missing, and
// every line left-padded with indent spaces. Callers pass the list-marker
// prefix length as indent when nesting ideas under a list item, else 0.
func FormatIdeas(raw string, indent int) []string {
	pad := strings.Repeat(" ", indent)

	var bullets []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "- ") {
			line = "- " + line
		}
		bullets = append(bullets, pad+line)
	}
	return bullets
}
