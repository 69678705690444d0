package note

import "testing"

func TestExtractInstruction(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantCleaned     string
		wantInstruction string
		wantOK          bool
	}{
		{
			name:            "list item with instruction",
			text:            "1. First item {expand}",
			wantCleaned:     "1. First item",
			wantInstruction: "expand",
			wantOK:          true,
		},
		{
			name:   "no braces",
			text:   "nothing to see here",
			wantOK: false,
		},
		{
			name:   "empty braces",
			text:   "text {}",
			wantOK: false,
		},
		{
			name:   "whitespace only braces",
			text:   "text {  }",
			wantOK: false,
		},
		{
			name:            "last span wins, earlier kept verbatim",
			text:            "keep {first} and {second}",
			wantCleaned:     "keep {first} and",
			wantInstruction: "second",
			wantOK:          true,
		},
		{
			name:            "span mid-text",
			text:            "before {do it} after",
			wantCleaned:     "before after",
			wantInstruction: "do it",
			wantOK:          true,
		},
		{
			name:            "payload trimmed",
			text:            "x { make longer }",
			wantCleaned:     "x",
			wantInstruction: "make longer",
			wantOK:          true,
		},
		{
			// Nested braces are unsupported: the span ends at the first
			// closing brace, leaving the outer one behind.
			name:            "non-greedy stops at first close",
			text:            "a {outer {inner}} b",
			wantCleaned:     "a} b",
			wantInstruction: "outer {inner",
			wantOK:          true,
		},
		{
			name:            "heading prefix survives",
			text:            "## Title {rewrite}",
			wantCleaned:     "## Title",
			wantInstruction: "rewrite",
			wantOK:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, instruction, ok := ExtractInstruction(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ExtractInstruction(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if cleaned != tt.wantCleaned {
				t.Errorf("cleaned = %q, want %q", cleaned, tt.wantCleaned)
			}
			if instruction != tt.wantInstruction {
				t.Errorf("instruction = %q, want %q", instruction, tt.wantInstruction)
			}
		})
	}
}
