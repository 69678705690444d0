package note

import "testing"

func TestReplaceParagraph(t *testing.T) {
	t.Run("without annotation line", func(t *testing.T) {
		doc := newDoc("old one", "old two", "", "rest")
		ReplaceParagraph(doc, 0, 1, -1, "rewritten")
		if doc.text() != "rewritten\n\nrest" {
			t.Errorf("document = %q", doc.text())
		}
		if doc.calls != 1 {
			t.Errorf("ReplaceParagraph issued %d ReplaceRange calls, want 1", doc.calls)
		}
	})

	t.Run("annotation line consumed", func(t *testing.T) {
		doc := newDoc("old", "%%a, b%%", "", "rest")
		ReplaceParagraph(doc, 0, 0, 1, "rewritten")
		if doc.text() != "rewritten\n\nrest" {
			t.Errorf("document = %q", doc.text())
		}
		if doc.calls != 1 {
			t.Errorf("ReplaceParagraph issued %d ReplaceRange calls, want 1", doc.calls)
		}
	})

	t.Run("multi-line replacement text", func(t *testing.T) {
		doc := newDoc("old", "tail")
		ReplaceParagraph(doc, 0, 0, -1, "new one\nnew two")
		if doc.text() != "new one\nnew two\ntail" {
			t.Errorf("document = %q", doc.text())
		}
	})
}

func TestReplaceParagraphWithIdeas(t *testing.T) {
	doc := newDoc("- topic", "", "rest")
	ReplaceParagraphWithIdeas(doc, 0, 0, "- topic", []string{"  - idea one", "  - idea two"})

	want := "- topic\n  - idea one\n  - idea two\n\nrest"
	if doc.text() != want {
		t.Errorf("document = %q, want %q", doc.text(), want)
	}
	if doc.calls != 1 {
		t.Errorf("issued %d ReplaceRange calls, want 1", doc.calls)
	}
}
