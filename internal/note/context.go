package note

import "strings"

const (
	contextLinesBefore = 10
	contextLinesAfter  = 5
)

// SurroundingContext gathers nearby document text for a paragraph spanning
// [start, end], so a model sees the neighborhood without the whole
// document. Up to three segments are joined by blank lines: the nearest
// heading above the paragraph (only when it sits more than ten lines up -
// closer headings already appear in the window), up to ten lines before
// the paragraph, and up to five lines after it. Returns "" when nothing
// qualifies.
func SurroundingContext(doc Document, start, end int) string {
	var segments []string

	for i := start - 1; i >= 0; i-- {
		if IsHeading(doc.Line(i)) {
			if start-i > contextLinesBefore {
				segments = append(segments, strings.TrimSpace(doc.Line(i)))
			}
			break
		}
	}

	if before := joinLines(doc, maxInt(0, start-contextLinesBefore), start-1); before != "" {
		segments = append(segments, before)
	}

	if after := joinLines(doc, end+1, minInt(doc.LineCount()-1, end+contextLinesAfter)); after != "" {
		segments = append(segments, after)
	}

	return strings.TrimSpace(strings.Join(segments, "\n\n"))
}

func joinLines(doc Document, from, to int) string {
	if from > to {
		return ""
	}
	lines := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		lines = append(lines, doc.Line(i))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
