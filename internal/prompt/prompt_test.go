package prompt

import (
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		in       Input
		contains []string
		excludes []string
	}{
		{
			name:     "translate defaults to English",
			action:   ActionTranslate,
			in:       Input{Text: "Hallo Welt"},
			contains: []string{"into English", "Hallo Welt"},
		},
		{
			name:     "translate honors target language",
			action:   ActionTranslate,
			in:       Input{Text: "hello", Language: "German"},
			contains: []string{"into German"},
			excludes: []string{"English"},
		},
		{
			name:     "ask puts the question first",
			action:   ActionAsk,
			in:       Input{Text: "some text", Instruction: "What does this mean?"},
			contains: []string{"What does this mean?\n\nText:\nsome text"},
		},
		{
			name:     "rewrite interpolates directives",
			action:   ActionRewrite,
			in:       Input{Text: "the text", Instruction: "bonjour, formal tone"},
			contains: []string{"bonjour, formal tone", "in parentheses"},
		},
		{
			name:     "context appended under header",
			action:   ActionExpand,
			in:       Input{Text: "body", Context: "# Section\nnearby"},
			contains: []string{"Document context:\n# Section\nnearby"},
		},
		{
			name:     "no context header without context",
			action:   ActionExpand,
			in:       Input{Text: "body"},
			excludes: []string{"Document context:"},
		},
		{
			name:     "text is trimmed",
			action:   ActionELI5,
			in:       Input{Text: "  padded  "},
			contains: []string{"Text:\npadded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.action, tt.in)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Build(%s) missing %q in:\n%s", tt.action, want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("Build(%s) should not contain %q:\n%s", tt.action, bad, got)
				}
			}
		})
	}
}

func TestSystemPrompt(t *testing.T) {
	base := SystemPrompt("")
	if strings.Contains(base, languageToken) {
		t.Error("placeholder token survived default-language substitution")
	}
	if strings.Contains(base, "Always respond in") {
		t.Error("default language should carry no directive")
	}

	german := SystemPrompt("German")
	if !strings.Contains(german, "Always respond in German.") {
		t.Errorf("missing language directive:\n%s", german)
	}
	if strings.Contains(german, languageToken) {
		t.Error("placeholder token survived substitution")
	}
}

func TestPrependDirective(t *testing.T) {
	if got := PrependDirective("do things", ""); got != "do things" {
		t.Errorf("default language altered the prompt: %q", got)
	}

	got := PrependDirective("do things", "French")
	if !strings.HasPrefix(got, "Always respond in French.\n\n") {
		t.Errorf("directive not prepended: %q", got)
	}
	if !strings.HasSuffix(got, "do things") {
		t.Errorf("prompt body lost: %q", got)
	}
}
