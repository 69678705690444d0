package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/gloss/internal/note"
)

func newBuffer(lines ...string) *Buffer {
	b := New()
	if len(lines) > 0 {
		b.lines = lines
	}
	return b
}

func TestReplaceRangeSingleLine(t *testing.T) {
	b := newBuffer("hello world")
	b.ReplaceRange("there", note.Position{Line: 0, Ch: 6}, note.Position{Line: 0, Ch: 11})

	assert.Equal(t, "hello there", b.Text())
	assert.True(t, b.Dirty())
	assert.Equal(t, note.Position{Line: 0, Ch: 11}, b.Cursor())
}

func TestReplaceRangeMultiLine(t *testing.T) {
	b := newBuffer("one", "two", "three")
	b.ReplaceRange("single", note.Position{Line: 0, Ch: 0}, note.Position{Line: 1, Ch: 3})

	assert.Equal(t, "single\nthree", b.Text())
}

func TestReplaceRangeInsertsLines(t *testing.T) {
	b := newBuffer("para", "rest")
	end := len(b.Line(0))
	b.ReplaceRange("\n%%a, b%%", note.Position{Line: 0, Ch: end}, note.Position{Line: 0, Ch: end})

	assert.Equal(t, "para\n%%a, b%%\nrest", b.Text())
	assert.Equal(t, 3, b.LineCount())
}

func TestUndoRedo(t *testing.T) {
	b := newBuffer("original")
	b.ReplaceRange("changed", note.Position{Line: 0, Ch: 0}, note.Position{Line: 0, Ch: 8})
	require.Equal(t, "changed", b.Text())

	assert.True(t, b.Undo())
	assert.Equal(t, "original", b.Text())

	assert.True(t, b.Redo())
	assert.Equal(t, "changed", b.Text())

	assert.True(t, b.Undo())
	assert.False(t, b.Undo(), "nothing further to undo")
}

func TestReplaceRangeIsOneUndoStep(t *testing.T) {
	b := newBuffer("line one", "line two", "%%tag%%")
	b.ReplaceRange("rewritten", note.Position{Line: 0, Ch: 0}, note.Position{Line: 2, Ch: len("%%tag%%")})
	require.Equal(t, "rewritten", b.Text())

	assert.True(t, b.Undo())
	assert.Equal(t, "line one\nline two\n%%tag%%", b.Text())
}

func TestNewEditDropsRedo(t *testing.T) {
	b := newBuffer("a")
	b.InsertText("b")
	b.Undo()
	b.InsertText("c")

	assert.False(t, b.Redo())
}

func TestTypingOperations(t *testing.T) {
	b := newBuffer("ab")
	b.SetCursor(note.Position{Line: 0, Ch: 1})

	b.InsertText("x")
	assert.Equal(t, "axb", b.Text())

	b.InsertNewline()
	assert.Equal(t, "ax\nb", b.Text())
	assert.Equal(t, note.Position{Line: 1, Ch: 0}, b.Cursor())

	b.DeleteBack()
	assert.Equal(t, "axb", b.Text())
	assert.Equal(t, note.Position{Line: 0, Ch: 2}, b.Cursor())
}

func TestSelection(t *testing.T) {
	b := newBuffer("a", "b", "c")
	b.Select(2, 0)
	start, end, ok := b.Selection()
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	b.ClearSelection()
	_, _, ok = b.Selection()
	assert.False(t, ok)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("one\r\ntwo\r\n"), 0644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", b.Text(), "CRLF normalized on load")

	b.InsertText("x")
	require.NoError(t, b.Save())
	assert.False(t, b.Dirty())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.Text(), string(data))
}

func TestLoadMissingFile(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "new.md"))
	require.NoError(t, err)
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, "", b.Line(0))
}

func TestClampCursor(t *testing.T) {
	b := newBuffer("short")
	b.SetCursor(note.Position{Line: 99, Ch: 99})
	assert.Equal(t, note.Position{Line: 0, Ch: 5}, b.Cursor())
}

func TestCursorSnapsToRuneBoundary(t *testing.T) {
	b := newBuffer("héllo") // é is two bytes

	// Moving down from a longer ASCII line keeps the byte offset, which
	// here points into the middle of é.
	b.SetCursor(note.Position{Line: 0, Ch: 2})
	assert.Equal(t, note.Position{Line: 0, Ch: 1}, b.Cursor())

	b.InsertText("x")
	assert.Equal(t, "hxéllo", b.Text(), "insert must not split the rune")
}

func TestCloneIsIndependent(t *testing.T) {
	b := newBuffer("one", "two")
	c := b.Clone()

	b.InsertText("x")
	assert.Equal(t, "one\ntwo", c.Text())
	assert.Equal(t, "xone\ntwo", b.Text())
}
