package note

import (
	"regexp"
	"strings"
	"unicode"
)

// Instruction spans are matched non-greedily and do not nest; for
// "{outer {inner}}" the span runs from the first { to the first }.
var instructionRe = regexp.MustCompile(`\{.*?\}`)

// ExtractInstruction finds the last {...} span in a paragraph's text and
// returns the trimmed payload together with the text with that span cut
// out. Earlier spans are left verbatim. A missing or whitespace-only span
// reports ok=false. Because only the span itself is removed, any leading
// markdown prefix in the text survives untouched.
func ExtractInstruction(text string) (cleaned, instruction string, ok bool) {
	spans := instructionRe.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return "", "", false
	}

	last := spans[len(spans)-1]
	instruction = strings.TrimSpace(text[last[0]+1 : last[1]-1])
	if instruction == "" {
		return "", "", false
	}

	before := strings.TrimRightFunc(text[:last[0]], unicode.IsSpace)
	cleaned = strings.TrimRightFunc(before+text[last[1]:], unicode.IsSpace)
	return cleaned, instruction, true
}
