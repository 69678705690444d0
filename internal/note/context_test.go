package note

import (
	"fmt"
	"strings"
	"testing"
)

func TestSurroundingContext(t *testing.T) {
	t.Run("single line document has no context", func(t *testing.T) {
		doc := newDoc("only line")
		if got := SurroundingContext(doc, 0, 0); got != "" {
			t.Errorf("SurroundingContext() = %q, want empty", got)
		}
	})

	t.Run("near neighbors joined", func(t *testing.T) {
		doc := newDoc("before", "target", "after")
		got := SurroundingContext(doc, 1, 1)
		want := "before\n\nafter"
		if got != want {
			t.Errorf("SurroundingContext() = %q, want %q", got, want)
		}
	})

	t.Run("heading inside window is not duplicated", func(t *testing.T) {
		doc := newDoc("# Section", "intro", "target")
		got := SurroundingContext(doc, 2, 2)
		want := "# Section\nintro"
		if got != want {
			t.Errorf("SurroundingContext() = %q, want %q", got, want)
		}
	})

	t.Run("distant heading included as own segment", func(t *testing.T) {
		lines := []string{"# Far Section"}
		for i := 0; i < 15; i++ {
			lines = append(lines, fmt.Sprintf("filler %d", i))
		}
		lines = append(lines, "target")
		doc := newDoc(lines...)

		got := SurroundingContext(doc, 16, 16)
		if !strings.HasPrefix(got, "# Far Section\n\n") {
			t.Errorf("context missing distant heading segment: %q", got)
		}
		if strings.Count(got, "# Far Section") != 1 {
			t.Errorf("heading appears more than once: %q", got)
		}
	})

	t.Run("window capped at ten before and five after", func(t *testing.T) {
		var lines []string
		for i := 0; i < 40; i++ {
			lines = append(lines, fmt.Sprintf("line %d", i))
		}
		doc := newDoc(lines...)

		got := SurroundingContext(doc, 20, 20)
		if strings.Contains(got, "line 9\n") || strings.Contains(got, "line 26") {
			t.Errorf("context window exceeded bounds: %q", got)
		}
		if !strings.Contains(got, "line 10") || !strings.Contains(got, "line 25") {
			t.Errorf("context window too small: %q", got)
		}
	})
}
