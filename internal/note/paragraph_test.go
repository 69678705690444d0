package note

import "testing"

func TestParagraph(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		at    int
		want  Bounds
		ok    bool
	}{
		{
			name:  "three line run",
			lines: []string{"Line one", "Line two", "Line three"},
			at:    1,
			want:  Bounds{Start: 0, End: 2},
			ok:    true,
		},
		{
			name:  "single line document",
			lines: []string{"only"},
			at:    0,
			want:  Bounds{Start: 0, End: 0},
			ok:    true,
		},
		{
			name:  "bounded by blanks",
			lines: []string{"above", "", "middle one", "middle two", "", "below"},
			at:    2,
			want:  Bounds{Start: 2, End: 3},
			ok:    true,
		},
		{
			name:  "bounded by annotation line",
			lines: []string{"para", "%%tag%%", "next"},
			at:    0,
			want:  Bounds{Start: 0, End: 0},
			ok:    true,
		},
		{
			name:  "blank line yields nothing",
			lines: []string{"a", "", "b"},
			at:    1,
			ok:    false,
		},
		{
			name:  "annotation line yields nothing",
			lines: []string{"a", "%%x%%"},
			at:    1,
			ok:    false,
		},
		{
			name:  "list item is atomic",
			lines: []string{"- first", "- second", "- third"},
			at:    1,
			want:  Bounds{Start: 1, End: 1},
			ok:    true,
		},
		{
			name:  "ordered list item is atomic",
			lines: []string{"1. first", "2. second"},
			at:    0,
			want:  Bounds{Start: 0, End: 0},
			ok:    true,
		},
		{
			name:  "out of range",
			lines: []string{"a"},
			at:    3,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Paragraph(newDoc(tt.lines...), tt.at)
			if ok != tt.ok {
				t.Fatalf("Paragraph() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Paragraph() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParagraphNear(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		at    int
		want  Bounds
		ok    bool
	}{
		{
			name:  "direct hit unchanged",
			lines: []string{"para one", "para two"},
			at:    0,
			want:  Bounds{Start: 0, End: 1},
			ok:    true,
		},
		{
			name:  "annotation line falls back to paragraph above",
			lines: []string{"the paragraph", "%%a, b%%"},
			at:    1,
			want:  Bounds{Start: 0, End: 0},
			ok:    true,
		},
		{
			name:  "annotation on first line has nothing above",
			lines: []string{"%%a%%", "text"},
			at:    0,
			ok:    false,
		},
		{
			name:  "fallback line is blank",
			lines: []string{"text", "", "%%a%%"},
			at:    2,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParagraphNear(newDoc(tt.lines...), tt.at)
			if ok != tt.ok {
				t.Fatalf("ParagraphNear() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParagraphNear() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
