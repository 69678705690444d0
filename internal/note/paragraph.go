package note

// Bounds identifies one semantic paragraph as an inclusive line range.
type Bounds struct {
	Start int
	End   int
}

// Paragraph computes the bounds of the paragraph containing line i.
// It returns false when the line is blank, an annotation line, or out of
// range. A list item is always its own single-line paragraph, so rewriting
// one item never bleeds into its siblings. Any other line expands upward
// and downward over contiguous non-blank, non-annotation lines.
func Paragraph(doc Document, i int) (Bounds, bool) {
	if i < 0 || i >= doc.LineCount() {
		return Bounds{}, false
	}

	line := doc.Line(i)
	if IsBlank(line) || IsAnnotationLine(line) {
		return Bounds{}, false
	}
	if IsListItem(line) {
		return Bounds{Start: i, End: i}, true
	}

	start := i
	for start > 0 {
		prev := doc.Line(start - 1)
		if IsBlank(prev) || IsAnnotationLine(prev) {
			break
		}
		start--
	}

	end := i
	for end < doc.LineCount()-1 {
		next := doc.Line(end + 1)
		if IsBlank(next) || IsAnnotationLine(next) {
			break
		}
		end++
	}

	return Bounds{Start: start, End: end}, true
}

// ParagraphNear behaves like Paragraph, except that a cursor resting on an
// annotation line falls back to the line above it - the paragraph the
// annotations belong to. It returns false when the annotation line is the
// first line of the document, or when the fallback line is blank.
func ParagraphNear(doc Document, i int) (Bounds, bool) {
	if i >= 0 && i < doc.LineCount() && IsAnnotationLine(doc.Line(i)) {
		if i == 0 {
			return Bounds{}, false
		}
		i--
	}
	return Paragraph(doc, i)
}
