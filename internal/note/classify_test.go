package note

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t", true},
		{"x", false},
		{"  x  ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.line); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsAnnotationLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"simple", "%%a, b%%", true},
		{"empty payload", "%%%%", true},
		{"surrounding whitespace", "  %%a%%  ", true},
		{"extra markers mid-line", "%% a %% b %%", true},
		{"lone marker", "%%", false},
		{"only prefix", "%%a", false},
		{"only suffix", "a%%", false},
		{"plain text", "hello", false},
		{"blank", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAnnotationLine(tt.line); got != tt.want {
				t.Errorf("IsAnnotationLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsListItem(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"- item", true},
		{"* item", true},
		{"+ item", true},
		{"  - indented", true},
		{"1. ordered", true},
		{"42. ordered", true},
		{"\t2. tab indented", true},
		{"-no space", false},
		{"1.no space", false},
		{"a. letters", false},
		{"plain", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsListItem(tt.line); got != tt.want {
			t.Errorf("IsListItem(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantPrefix  string
		wantContent string
	}{
		{"unordered list", "- item text", "- ", "item text"},
		{"indented list", "  - item", "  - ", "item"},
		{"ordered list", "12. item", "12. ", "item"},
		{"heading", "## Heading", "## ", "Heading"},
		{"six hashes", "###### deep", "###### ", "deep"},
		{"seven hashes", "####### not a heading", "", "####### not a heading"},
		{"blockquote", "> quoted", "> ", "quoted"},
		{"plain", "plain text", "", "plain text"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, content := SplitPrefix(tt.line)
			if prefix != tt.wantPrefix || content != tt.wantContent {
				t.Errorf("SplitPrefix(%q) = (%q, %q), want (%q, %q)",
					tt.line, prefix, content, tt.wantPrefix, tt.wantContent)
			}
			if prefix+content != tt.line {
				t.Errorf("SplitPrefix(%q) does not round-trip: %q + %q", tt.line, prefix, content)
			}
		})
	}
}
