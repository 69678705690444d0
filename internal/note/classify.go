package note

import (
	"regexp"
	"strings"
)

// marker delimits an annotation line: %%item1, item2%%
const marker = "%%"

var (
	listItemRe = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+`)
	headingRe  = regexp.MustCompile(`^#{1,6}\s+`)
	quoteRe    = regexp.MustCompile(`^>\s+`)
)

// IsBlank reports whether the line is empty or whitespace-only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsAnnotationLine reports whether the trimmed line both starts and ends
// with the %% marker. The empty form %%%% qualifies; a lone %% does not.
// Extra %% sequences mid-line do not disqualify the line.
func IsAnnotationLine(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2*len(marker) &&
		strings.HasPrefix(t, marker) &&
		strings.HasSuffix(t, marker)
}

// IsListItem reports whether the line starts (after any indentation) with
// an unordered marker (-, *, +) or an ordered marker (digits plus a dot),
// followed by at least one whitespace character.
func IsListItem(line string) bool {
	return listItemRe.MatchString(line)
}

// IsHeading reports whether the line is a markdown heading (1-6 # plus
// whitespace).
func IsHeading(line string) bool {
	return headingRe.MatchString(line)
}

// SplitPrefix decomposes a line into its leading block marker and the
// remaining content. Candidates are tried in order: list marker (including
// indentation), heading hashes, blockquote chevron - each with its trailing
// whitespace. No match yields ("", line). The parts always concatenate back
// to the original line.
func SplitPrefix(line string) (prefix, content string) {
	for _, re := range []*regexp.Regexp{listItemRe, headingRe, quoteRe} {
		if loc := re.FindStringIndex(line); loc != nil {
			return line[:loc[1]], line[loc[1]:]
		}
	}
	return "", line
}
