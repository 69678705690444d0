package note

// Position addresses a character within a document line. Ch is a byte
// offset into the line's text.
type Position struct {
	Line int
	Ch   int
}

// Document is the line-addressed buffer the engine operates on. The engine
// never owns a document; it reads line content fresh on every call and
// mutates only through ReplaceRange, which the host must apply as a single
// undoable edit.
type Document interface {
	// Line returns the text of line i without a trailing newline.
	Line(i int) string

	// LineCount returns the number of lines in the document.
	LineCount() int

	// ReplaceRange replaces the inclusive character range [from, to) with
	// text, which may span multiple lines.
	ReplaceRange(text string, from, to Position)
}
