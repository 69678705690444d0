package prompt

import (
	"fmt"
	"strings"
)

// Action tags the built-in prompt templates.
type Action string

const (
	ActionTranslate Action = "translate"
	ActionExample   Action = "example"
	ActionExpand    Action = "expand"
	ActionELI5      Action = "eli5"
	ActionAsk       Action = "ask"
	ActionRewrite   Action = "rewrite"
	ActionInspire   Action = "inspire"
	ActionSuggest   Action = "suggest"
)

// Input carries everything a template may interpolate. Text is the
// paragraph being worked on; Instruction is a free-form directive or
// question; Language is the target response language; Context is nearby
// document text.
type Input struct {
	Text        string
	Instruction string
	Language    string
	Context     string
}

// defaultTranslateLanguage applies when translate is invoked without an
// explicit target.
const defaultTranslateLanguage = "English"

// The rewrite template tells the model how to weave directive phrases into
// the text; the fallback behavior is the model's to execute, not ours.
const rewriteTemplate = `Rewrite the following text so that it incorporates each of these directives: %s.
If a directive is a phrase in another language, insert that phrase in parentheses at the point in the text where it fits naturally. If no natural insertion point exists, append it in parentheses at the end.
Keep everything else unchanged.

Text:
%s`

// Build renders the user prompt for an action.
func Build(action Action, in Input) string {
	text := strings.TrimSpace(in.Text)

	var prompt string
	switch action {
	case ActionTranslate:
		language := in.Language
		if language == "" {
			language = defaultTranslateLanguage
		}
		prompt = fmt.Sprintf("Translate the following text into %s. Return only the translation.\n\nText:\n%s", language, text)

	case ActionExample:
		prompt = fmt.Sprintf("Give one concrete example that illustrates the following text. Match its markup and tone.\n\nText:\n%s", text)

	case ActionExpand:
		prompt = fmt.Sprintf("Expand the following text with more detail and substance, keeping its tone and markup.\n\nText:\n%s", text)

	case ActionELI5:
		prompt = fmt.Sprintf("Rewrite the following text so a five-year-old could understand it.\n\nText:\n%s", text)

	case ActionAsk:
		prompt = fmt.Sprintf("%s\n\nText:\n%s", strings.TrimSpace(in.Instruction), text)

	case ActionRewrite:
		prompt = fmt.Sprintf(rewriteTemplate, strings.TrimSpace(in.Instruction), text)

	case ActionInspire:
		prompt = fmt.Sprintf("Suggest a few short ideas that could continue the following text. Put each idea on its own line.\n\nText:\n%s", text)
		if instruction := strings.TrimSpace(in.Instruction); instruction != "" {
			prompt += "\n\nFocus on: " + instruction
		}

	case ActionSuggest:
		prompt = fmt.Sprintf("Suggest up to 5 short keywords that describe the following text. Respond with a comma-separated list and nothing else.\n\nText:\n%s", text)

	default:
		prompt = text
	}

	return withContext(prompt, in.Context)
}

// withContext appends nearby document text under a fixed header so every
// template shares one context convention.
func withContext(prompt, context string) string {
	context = strings.TrimSpace(context)
	if context == "" {
		return prompt
	}
	return prompt + "\n\nDocument context:\n" + context
}
