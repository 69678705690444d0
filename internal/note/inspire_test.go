package note

import (
	"strings"
	"testing"
)

func TestFormatIdeas(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		indent int
		want   []string
	}{
		{
			name: "marker added where missing",
			raw:  "No marker\n- With marker",
			want: []string{"- No marker", "- With marker"},
		},
		{
			name: "blank lines dropped",
			raw:  "one\n\n  \ntwo",
			want: []string{"- one", "- two"},
		},
		{
			name:   "indented under list item",
			raw:    "idea",
			indent: 2,
			want:   []string{"  - idea"},
		},
		{
			name: "empty response",
			raw:  "  \n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatIdeas(tt.raw, tt.indent)
			if !equalStrings(got, tt.want) {
				t.Errorf("FormatIdeas() = %v, want %v", got, tt.want)
			}
			for _, line := range got {
				trimmed := line[tt.indent:]
				if !strings.HasPrefix(trimmed, "- ") {
					t.Errorf("line %q does not start with bullet after indent", line)
				}
				if line[:tt.indent] != strings.Repeat(" ", tt.indent) {
					t.Errorf("line %q not indented by exactly %d spaces", line, tt.indent)
				}
			}
		})
	}
}
