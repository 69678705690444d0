package buffer

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sant0-9/gloss/internal/note"
)

// Buffer is the concrete note.Document: a line-addressed text buffer with
// a cursor, an optional line selection, and snapshot-based undo. Every
// mutation funnels through ReplaceRange, so one call is one undo step.
type Buffer struct {
	lines  []string
	path   string
	dirty  bool
	cursor note.Position

	// Line selection; selStart == -1 means none.
	selStart int
	selEnd   int

	undo []snapshot
	redo []snapshot
}

type snapshot struct {
	lines  []string
	cursor note.Position
}

// New returns an empty single-line buffer.
func New() *Buffer {
	return &Buffer{lines: []string{""}, selStart: -1}
}

// Load reads a file into a buffer. CRLF line endings are normalized to LF.
// A missing file yields an empty buffer bound to the path, so "gloss
// newfile.md" works.
func Load(path string) (*Buffer, error) {
	b := New()
	b.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	b.lines = strings.Split(text, "\n")
	return b, nil
}

// Clone copies the buffer's text into a fresh buffer. Background work
// reads the clone while the original keeps serving the editor.
func (b *Buffer) Clone() *Buffer {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return &Buffer{lines: lines, path: b.path, selStart: -1}
}

// Save writes the buffer back to its file with LF endings.
func (b *Buffer) Save() error {
	if b.path == "" {
		return fmt.Errorf("buffer has no file path")
	}
	if err := os.WriteFile(b.path, []byte(b.Text()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", b.path, err)
	}
	b.dirty = false
	return nil
}

// Reload re-reads the file, replacing the buffer contents as one undoable
// step. Used when the watcher reports an external write and the user
// accepts the reload.
func (b *Buffer) Reload() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", b.path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	b.pushUndo()
	b.lines = strings.Split(text, "\n")
	b.dirty = false
	b.clampCursor()
	return nil
}

func (b *Buffer) Path() string  { return b.path }
func (b *Buffer) Dirty() bool   { return b.dirty }
func (b *Buffer) Text() string  { return strings.Join(b.lines, "\n") }
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}
func (b *Buffer) LineCount() int { return len(b.lines) }

// ReplaceRange splices text over the character range [from, to). The text
// may span multiple lines. One snapshot is recorded, so the whole splice
// undoes as a single step. The cursor lands at the end of the inserted
// text.
func (b *Buffer) ReplaceRange(text string, from, to note.Position) {
	from = b.clamp(from)
	to = b.clamp(to)

	b.pushUndo()

	head := b.lines[from.Line][:from.Ch]
	tail := b.lines[to.Line][to.Ch:]
	inserted := strings.Split(head+text+tail, "\n")

	var next []string
	next = append(next, b.lines[:from.Line]...)
	next = append(next, inserted...)
	next = append(next, b.lines[to.Line+1:]...)
	b.lines = next
	b.dirty = true

	endLine := from.Line + len(inserted) - 1
	endCh := len(inserted[len(inserted)-1]) - len(tail)
	if endCh < 0 {
		endCh = 0
	}
	b.cursor = note.Position{Line: endLine, Ch: endCh}
	b.selStart = -1
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() note.Position { return b.cursor }

// SetCursor moves the cursor, clamping it into the document.
func (b *Buffer) SetCursor(p note.Position) {
	b.cursor = b.clamp(p)
}

// Select marks an inclusive line range as selected.
func (b *Buffer) Select(start, end int) {
	if start > end {
		start, end = end, start
	}
	b.selStart = start
	b.selEnd = end
}

// ClearSelection drops any line selection.
func (b *Buffer) ClearSelection() { b.selStart = -1 }

// Selection returns the selected line range, if any.
func (b *Buffer) Selection() (start, end int, ok bool) {
	if b.selStart < 0 {
		return 0, 0, false
	}
	return b.selStart, b.selEnd, true
}

// InsertText types text at the cursor.
func (b *Buffer) InsertText(s string) {
	b.ReplaceRange(s, b.cursor, b.cursor)
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	b.ReplaceRange("\n", b.cursor, b.cursor)
}

// DeleteBack removes the character before the cursor, joining lines at a
// line start.
func (b *Buffer) DeleteBack() {
	c := b.cursor
	if c.Ch > 0 {
		b.ReplaceRange("", note.Position{Line: c.Line, Ch: c.Ch - 1}, c)
		return
	}
	if c.Line > 0 {
		prev := len(b.lines[c.Line-1])
		b.ReplaceRange("", note.Position{Line: c.Line - 1, Ch: prev}, c)
	}
}

// Undo reverts the most recent mutation. Returns false when there is
// nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	b.redo = append(b.redo, b.snapshot())
	b.restore(b.undo[len(b.undo)-1])
	b.undo = b.undo[:len(b.undo)-1]
	return true
}

// Redo reapplies the most recently undone mutation.
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	b.undo = append(b.undo, b.snapshot())
	b.restore(b.redo[len(b.redo)-1])
	b.redo = b.redo[:len(b.redo)-1]
	return true
}

func (b *Buffer) pushUndo() {
	b.undo = append(b.undo, b.snapshot())
	b.redo = nil
}

func (b *Buffer) snapshot() snapshot {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return snapshot{lines: lines, cursor: b.cursor}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = s.lines
	b.cursor = s.cursor
	b.dirty = true
	b.selStart = -1
	b.clampCursor()
}

func (b *Buffer) clamp(p note.Position) note.Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	line := b.lines[p.Line]
	if p.Ch < 0 {
		p.Ch = 0
	}
	if p.Ch > len(line) {
		p.Ch = len(line)
	}
	// Ch is a byte offset; never land inside a multibyte rune.
	for p.Ch > 0 && p.Ch < len(line) && !utf8.RuneStart(line[p.Ch]) {
		p.Ch--
	}
	return p
}

func (b *Buffer) clampCursor() {
	b.cursor = b.clamp(b.cursor)
}
