package action

import "errors"

// Kind identifies an action the editor can run on a paragraph.
type Kind string

const (
	// Annotate appends user-typed annotations; no model involved.
	Annotate Kind = "annotate"
	// Suggest asks the model for keyword annotations.
	Suggest Kind = "suggest"
	// Rewrite applies the paragraph's annotations as rewrite directives.
	Rewrite Kind = "rewrite"
	// Instruct applies the paragraph's embedded {...} instruction.
	Instruct Kind = "instruct"
	Translate Kind = "translate"
	Example   Kind = "example"
	Expand    Kind = "expand"
	ELI5      Kind = "eli5"
	// Ask answers a typed question about the paragraph, inserting the
	// answer below it.
	Ask Kind = "ask"
	// Inspire appends bullet ideas continuing the paragraph.
	Inspire Kind = "inspire"
	// Custom runs a user-defined template.
	Custom Kind = "custom"
)

// User-input-absent failures. Each aborts the action before any document
// mutation; the TUI shows a short notice.
var (
	ErrNoParagraph   = errors.New("cursor is not inside a paragraph")
	ErrNoInstruction = errors.New("no {...} instruction found in the paragraph")
	ErrNoAnnotations = errors.New("no annotations to work with")
)

// Stage tracks runner progress for the processing view.
type Stage int

const (
	StageLocate Stage = iota
	StagePrompt
	StageComplete
	StageApply
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLocate:
		return "Locate"
	case StagePrompt:
		return "Prompt"
	case StageComplete:
		return "Complete"
	case StageApply:
		return "Apply"
	case StageDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Progress is reported to the TUI while a run is in flight.
type Progress struct {
	Stage       Stage
	StageIndex  int
	TotalStages int
	Message     string
}
