package note

import "strings"

// sliceDoc is a minimal in-memory Document for tests. ReplaceRange splices
// like an editor buffer: text before from, the new text, and text after to
// are joined and re-split on newlines.
type sliceDoc struct {
	lines []string
	calls int
}

func newDoc(lines ...string) *sliceDoc {
	return &sliceDoc{lines: lines}
}

func (d *sliceDoc) Line(i int) string { return d.lines[i] }
func (d *sliceDoc) LineCount() int    { return len(d.lines) }

func (d *sliceDoc) ReplaceRange(text string, from, to Position) {
	d.calls++
	head := d.lines[from.Line][:from.Ch]
	tail := d.lines[to.Line][to.Ch:]
	replacement := strings.Split(head+text+tail, "\n")

	var next []string
	next = append(next, d.lines[:from.Line]...)
	next = append(next, replacement...)
	next = append(next, d.lines[to.Line+1:]...)
	d.lines = next
}

func (d *sliceDoc) text() string { return strings.Join(d.lines, "\n") }

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
