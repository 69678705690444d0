package note

import "testing"

func TestParseAnnotations(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple", "%%a, b, c%%", []string{"a", "b", "c"}},
		{"empty form", "%%%%", nil},
		{"whitespace payload", "%%  %%", nil},
		{"trailing comma and empty piece", "%%a, , b, %%", []string{"a", "b"}},
		{"untrimmed line", "  %% x ,y %%  ", []string{"x", "y"}},
		{"duplicates kept at parse time", "%%a, a%%", []string{"a", "a"}},
		{"extra markers in payload", "%% a %% b %%", []string{"a %% b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAnnotations(tt.line); !equalStrings(got, tt.want) {
				t.Errorf("ParseAnnotations(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFormatAnnotations(t *testing.T) {
	if got := FormatAnnotations(nil); got != "%%%%" {
		t.Errorf("FormatAnnotations(nil) = %q, want %%%%%%%%", got)
	}
	if got := FormatAnnotations([]string{"a", "b"}); got != "%%a, b%%" {
		t.Errorf("FormatAnnotations() = %q, want %q", got, "%%a, b%%")
	}
}

func TestAnnotationRoundTrip(t *testing.T) {
	cases := [][]string{
		{"a"},
		{"a", "b", "c"},
		{"multi word item", "another one"},
	}
	for _, items := range cases {
		if got := ParseAnnotations(FormatAnnotations(items)); !equalStrings(got, items) {
			t.Errorf("round trip of %v produced %v", items, got)
		}
	}
}

func TestAnnotationLine(t *testing.T) {
	doc := newDoc("para", "%%a%%", "", "other")

	if i, ok := AnnotationLine(doc, 0); !ok || i != 1 {
		t.Errorf("AnnotationLine(end=0) = (%d, %v), want (1, true)", i, ok)
	}
	if _, ok := AnnotationLine(doc, 2); ok {
		t.Error("AnnotationLine(end=2) found a marker where none exists")
	}
	if _, ok := AnnotationLine(doc, 3); ok {
		t.Error("AnnotationLine at last line should not look past the document")
	}
}

func TestAppendAnnotations(t *testing.T) {
	t.Run("merge into existing line with dedup", func(t *testing.T) {
		doc := newDoc("para", "%%a, b%%")
		AppendAnnotations(doc, 0, []string{"b", "c"})
		if got := doc.Line(1); got != "%%a, b, c%%" {
			t.Errorf("merged line = %q, want %q", got, "%%a, b, c%%")
		}
		if doc.calls != 1 {
			t.Errorf("AppendAnnotations issued %d ReplaceRange calls, want 1", doc.calls)
		}
	})

	t.Run("insert fresh line below paragraph", func(t *testing.T) {
		doc := newDoc("para", "", "next")
		AppendAnnotations(doc, 0, []string{"x", "y"})
		want := "para\n%%x, y%%\n\nnext"
		if doc.text() != want {
			t.Errorf("document = %q, want %q", doc.text(), want)
		}
		if doc.calls != 1 {
			t.Errorf("AppendAnnotations issued %d ReplaceRange calls, want 1", doc.calls)
		}
	})

	t.Run("duplicate items never repeat", func(t *testing.T) {
		doc := newDoc("para", "%%a%%")
		AppendAnnotations(doc, 0, []string{"a", "a", "b"})
		if got := doc.Line(1); got != "%%a, b%%" {
			t.Errorf("merged line = %q, want %q", got, "%%a, b%%")
		}
	})
}
