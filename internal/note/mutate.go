package note

import "strings"

// ReplaceParagraph substitutes text for the paragraph [start, end] in a
// single ReplaceRange call. When annLine >= 0 the paragraph's annotation
// line is consumed too: the replaced range extends to whichever of end and
// annLine is lower in the document. One call, one undo step, whether or
// not annotations existed.
func ReplaceParagraph(doc Document, start, end, annLine int, text string) {
	outer := end
	if annLine > outer {
		outer = annLine
	}
	doc.ReplaceRange(text,
		Position{Line: start, Ch: 0},
		Position{Line: outer, Ch: len(doc.Line(outer))})
}

// ReplaceParagraphWithIdeas substitutes the paragraph [start, end] with
// paragraphText followed by the bullet lines, again as one ReplaceRange.
func ReplaceParagraphWithIdeas(doc Document, start, end int, paragraphText string, bullets []string) {
	text := paragraphText + "\n" + strings.Join(bullets, "\n")
	doc.ReplaceRange(text,
		Position{Line: start, Ch: 0},
		Position{Line: end, Ch: len(doc.Line(end))})
}
