package prompt

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed writing.md
var writingBase string

// languageToken marks where the language directive lands in a base system
// prompt. For the default language the token is removed instead.
const languageToken = "{{language_directive}}"

func directive(language string) string {
	return fmt.Sprintf("Always respond in %s.", language)
}

// SystemPrompt returns the writing system prompt, with the language
// directive substituted for the placeholder token, or the token stripped
// when language is empty (model default).
func SystemPrompt(language string) string {
	base := writingBase
	if language == "" {
		return strings.TrimSpace(strings.ReplaceAll(base, languageToken, ""))
	}
	return strings.TrimSpace(strings.ReplaceAll(base, languageToken, directive(language)))
}

// PrependDirective puts the language directive ahead of a prompt that has
// no placeholder token, such as a user-defined action template.
func PrependDirective(prompt, language string) string {
	if language == "" {
		return prompt
	}
	return directive(language) + "\n\n" + prompt
}
