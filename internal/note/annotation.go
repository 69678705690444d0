package note

import "strings"

// ParseAnnotations decodes a marker line into its ordered items. The outer
// whitespace and both %% markers are stripped, the payload is split on
// commas, each piece is trimmed, and empty pieces (trailing or doubled
// commas) are dropped. Duplicates are kept; dedup happens on append, not
// on decode.
func ParseAnnotations(line string) []string {
	payload := strings.TrimSpace(line)
	payload = strings.TrimPrefix(payload, marker)
	payload = strings.TrimSuffix(payload, marker)

	var items []string
	for _, piece := range strings.Split(payload, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			items = append(items, piece)
		}
	}
	return items
}

// FormatAnnotations encodes items as a marker line. An empty list yields
// the empty form %%%%.
func FormatAnnotations(items []string) string {
	return marker + strings.Join(items, ", ") + marker
}

// AnnotationLine returns the index of the annotation line attached to a
// paragraph ending at endLine. Only the line directly below qualifies.
func AnnotationLine(doc Document, endLine int) (int, bool) {
	i := endLine + 1
	if i < doc.LineCount() && IsAnnotationLine(doc.Line(i)) {
		return i, true
	}
	return 0, false
}

// AppendAnnotations merges items into the paragraph's annotation line,
// creating one below endLine when none exists. Items already present
// (exact string equality) are skipped; insertion order is preserved.
// Either path issues exactly one ReplaceRange, so the edit is a single
// undo step.
func AppendAnnotations(doc Document, endLine int, items []string) {
	if annLine, ok := AnnotationLine(doc, endLine); ok {
		merged := ParseAnnotations(doc.Line(annLine))
		for _, item := range items {
			if !containsString(merged, item) {
				merged = append(merged, item)
			}
		}
		doc.ReplaceRange(FormatAnnotations(merged),
			Position{Line: annLine, Ch: 0},
			Position{Line: annLine, Ch: len(doc.Line(annLine))})
		return
	}

	endCh := len(doc.Line(endLine))
	doc.ReplaceRange("\n"+FormatAnnotations(items),
		Position{Line: endLine, Ch: endCh},
		Position{Line: endLine, Ch: endCh})
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
