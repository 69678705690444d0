package action

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sant0-9/gloss/internal/llm"
	"github.com/sant0-9/gloss/internal/note"
	"github.com/sant0-9/gloss/internal/prompt"
)

// maxSuggestedAnnotations caps how many keywords a suggest run appends.
const maxSuggestedAnnotations = 5

// Request describes one action invocation.
type Request struct {
	Kind Kind

	// Line is the cursor line the paragraph is located from.
	Line int

	// Bounds overrides paragraph location when the user selected lines.
	Bounds *note.Bounds

	// Input is typed text: annotation items for Annotate, the question
	// for Ask.
	Input string

	// Template backs a Custom run.
	Template *Template
}

// Result is what a successful run reports back to the TUI. The run's
// single buffer mutation is carried as a deferred edit so the caller can
// apply it on its own thread.
type Result struct {
	Message string

	apply func(note.Document)
}

// Apply performs the run's one ReplaceRange against doc. Line lengths are
// read at apply time, so the edit targets whatever the range holds then.
func (res *Result) Apply(doc note.Document) {
	if res.apply != nil {
		res.apply(doc)
	}
}

// Runner executes actions. All model traffic goes through one Provider.
// Run only ever reads the document it is given; the mutation comes back
// inside the Result, so a failed run has no edit to apply and the buffer
// stays byte-identical.
type Runner struct {
	provider   llm.Provider
	model      string
	language   string
	logger     *zap.Logger
	onProgress func(Progress)
}

func NewRunner(provider llm.Provider, model, language string, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		provider: provider,
		model:    model,
		language: language,
		logger:   logger,
	}
}

// SetProgressCallback sets the progress callback
func (r *Runner) SetProgressCallback(fn func(Progress)) {
	r.onProgress = fn
}

func (r *Runner) progress(stage Stage, message string) {
	if r.onProgress != nil {
		r.onProgress(Progress{
			Stage:       stage,
			StageIndex:  int(stage),
			TotalStages: int(StageApply) + 1,
			Message:     message,
		})
	}
}

// Run executes one action. The flow is always locate, gather, prompt,
// complete - then the Result carries the apply step, which issues exactly
// one ReplaceRange when the caller invokes it.
func (r *Runner) Run(ctx context.Context, doc note.Document, req Request) (*Result, error) {
	requestID := uuid.NewString()
	start := time.Now()
	log := r.logger.With(
		zap.String("request_id", requestID),
		zap.String("action", string(req.Kind)),
		zap.String("provider", r.provider.Name()),
	)

	result, err := r.run(ctx, doc, req, log)
	if err != nil {
		log.Warn("action failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	log.Info("action complete", zap.Duration("duration", time.Since(start)))
	return result, nil
}

func (r *Runner) run(ctx context.Context, doc note.Document, req Request, log *zap.Logger) (*Result, error) {
	r.progress(StageLocate, "Locating paragraph...")

	bounds, ok := r.locate(doc, req)
	if !ok {
		return nil, ErrNoParagraph
	}
	log.Debug("paragraph located", zap.Int("start", bounds.Start), zap.Int("end", bounds.End))

	text := paragraphText(doc, bounds)

	switch req.Kind {
	case Annotate:
		return r.runAnnotate(doc, bounds, req.Input)
	case Suggest:
		return r.runSuggest(ctx, doc, bounds, text)
	case Rewrite:
		return r.runRewrite(ctx, doc, bounds, text)
	case Instruct:
		return r.runInstruct(ctx, doc, bounds, text)
	case Ask:
		return r.runAsk(ctx, doc, bounds, text, req.Input)
	case Inspire:
		return r.runInspire(ctx, doc, bounds, text)
	case Custom:
		return r.runCustom(ctx, doc, bounds, text, req.Template)
	default:
		return r.runTransform(ctx, doc, bounds, text, req.Kind)
	}
}

func (r *Runner) locate(doc note.Document, req Request) (note.Bounds, bool) {
	if req.Bounds != nil {
		return *req.Bounds, true
	}
	return note.ParagraphNear(doc, req.Line)
}

func paragraphText(doc note.Document, b note.Bounds) string {
	lines := make([]string, 0, b.End-b.Start+1)
	for i := b.Start; i <= b.End; i++ {
		lines = append(lines, doc.Line(i))
	}
	return strings.Join(lines, "\n")
}

// complete sends one request and enforces the empty-result check before
// anything downstream runs.
func (r *Runner) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	r.progress(StageComplete, "Waiting for "+r.provider.Name()+"...")

	resp, err := r.provider.Complete(ctx, llm.NewRequest(r.model, systemPrompt, userPrompt))
	if err != nil {
		return "", err
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", llm.ErrEmptyCompletion
	}
	return content, nil
}

// runAnnotate appends typed annotations. No model, no context: just the
// codec and one ReplaceRange.
func (r *Runner) runAnnotate(doc note.Document, bounds note.Bounds, input string) (*Result, error) {
	items := splitItems(input)
	if len(items) == 0 {
		return nil, ErrNoAnnotations
	}

	r.progress(StageApply, "Updating annotations...")
	return &Result{
		Message: "annotations updated",
		apply: func(doc note.Document) {
			note.AppendAnnotations(doc, bounds.End, items)
		},
	}, nil
}

// runSuggest asks the model for keywords and appends them like typed
// annotations.
func (r *Runner) runSuggest(ctx context.Context, doc note.Document, bounds note.Bounds, text string) (*Result, error) {
	r.progress(StagePrompt, "Building prompt...")
	userPrompt := prompt.Build(prompt.ActionSuggest, prompt.Input{
		Text:    text,
		Context: note.SurroundingContext(doc, bounds.Start, bounds.End),
	})

	content, err := r.complete(ctx, prompt.SystemPrompt(r.language), userPrompt)
	if err != nil {
		return nil, err
	}

	items := splitItems(content)
	if len(items) == 0 {
		return nil, llm.ErrEmptyCompletion
	}
	if len(items) > maxSuggestedAnnotations {
		items = items[:maxSuggestedAnnotations]
	}

	r.progress(StageApply, "Updating annotations...")
	return &Result{
		Message: "annotations suggested",
		apply: func(doc note.Document) {
			note.AppendAnnotations(doc, bounds.End, items)
		},
	}, nil
}

// runRewrite turns the paragraph's annotations into rewrite directives and
// replaces both the paragraph and its annotation line.
func (r *Runner) runRewrite(ctx context.Context, doc note.Document, bounds note.Bounds, text string) (*Result, error) {
	annLine, ok := note.AnnotationLine(doc, bounds.End)
	if !ok {
		return nil, ErrNoAnnotations
	}
	items := note.ParseAnnotations(doc.Line(annLine))
	if len(items) == 0 {
		return nil, ErrNoAnnotations
	}

	r.progress(StagePrompt, "Building prompt...")
	userPrompt := prompt.Build(prompt.ActionRewrite, prompt.Input{
		Text:        text,
		Instruction: strings.Join(items, ", "),
		Context:     note.SurroundingContext(doc, bounds.Start, bounds.End),
	})

	content, err := r.complete(ctx, prompt.SystemPrompt(r.language), userPrompt)
	if err != nil {
		return nil, err
	}

	r.progress(StageApply, "Applying rewrite...")
	return &Result{
		Message: "paragraph rewritten",
		apply: func(doc note.Document) {
			note.ReplaceParagraph(doc, bounds.Start, bounds.End, annLine, content)
		},
	}, nil
}

// runInstruct extracts the embedded {...} instruction and rewrites the
// cleaned paragraph with it. An attached annotation line contributes extra
// directives and is consumed alongside the paragraph.
func (r *Runner) runInstruct(ctx context.Context, doc note.Document, bounds note.Bounds, text string) (*Result, error) {
	cleaned, instruction, ok := note.ExtractInstruction(text)
	if !ok {
		return nil, ErrNoInstruction
	}

	annLine := -1
	if i, ok := note.AnnotationLine(doc, bounds.End); ok {
		annLine = i
		if items := note.ParseAnnotations(doc.Line(i)); len(items) > 0 {
			instruction = instruction + ", " + strings.Join(items, ", ")
		}
	}

	r.progress(StagePrompt, "Building prompt...")
	userPrompt := prompt.Build(prompt.ActionRewrite, prompt.Input{
		Text:        cleaned,
		Instruction: instruction,
		Context:     note.SurroundingContext(doc, bounds.Start, bounds.End),
	})

	content, err := r.complete(ctx, prompt.SystemPrompt(r.language), userPrompt)
	if err != nil {
		return nil, err
	}

	r.progress(StageApply, "Applying rewrite...")
	return &Result{
		Message: "instruction applied",
		apply: func(doc note.Document) {
			note.ReplaceParagraph(doc, bounds.Start, bounds.End, annLine, content)
		},
	}, nil
}

// runTransform handles the single-shot rewrites: translate, example,
// expand, eli5. The paragraph alone is replaced; an attached annotation
// line stays, since its directives were not consumed.
func (r *Runner) runTransform(ctx context.Context, doc note.Document, bounds note.Bounds, text string, kind Kind) (*Result, error) {
	r.progress(StagePrompt, "Building prompt...")
	userPrompt := prompt.Build(prompt.Action(kind), prompt.Input{
		Text:     text,
		Language: r.language,
		Context:  note.SurroundingContext(doc, bounds.Start, bounds.End),
	})

	content, err := r.complete(ctx, prompt.SystemPrompt(r.language), userPrompt)
	if err != nil {
		return nil, err
	}

	r.progress(StageApply, "Applying rewrite...")
	return &Result{
		Message: string(kind) + " applied",
		apply: func(doc note.Document) {
			note.ReplaceParagraph(doc, bounds.Start, bounds.End, -1, content)
		},
	}, nil
}

// runAsk inserts the model's answer below the paragraph. The net effect is
// still one replace: the paragraph is substituted by itself plus a blank
// line plus the answer.
func (r *Runner) runAsk(ctx context.Context, doc note.Document, bounds note.Bounds, text, question string) (*Result, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrNoInstruction
	}

	r.progress(StagePrompt, "Building prompt...")
	userPrompt := prompt.Build(prompt.ActionAsk, prompt.Input{
		Text:        text,
		Instruction: question,
		Context:     note.SurroundingContext(doc, bounds.Start, bounds.End),
	})

	content, err := r.complete(ctx, prompt.PrependDirective(prompt.SystemPrompt(""), r.language), userPrompt)
	if err != nil {
		return nil, err
	}

	r.progress(StageApply, "Inserting answer...")
	return &Result{
		Message: "answer inserted",
		apply: func(doc note.Document) {
			note.ReplaceParagraph(doc, bounds.Start, bounds.End, -1, text+"\n\n"+content)
		},
	}, nil
}

// runInspire appends bullet ideas under the paragraph. A trailing {...}
// span is consumed as extra steering first. Ideas nest under a list item
// by indenting to the width of its marker.
func (r *Runner) runInspire(ctx context.Context, doc note.Document, bounds note.Bounds, text string) (*Result, error) {
	kept := text
	extra := ""
	if cleaned, instruction, ok := note.ExtractInstruction(text); ok {
		kept = cleaned
		extra = instruction
	}

	r.progress(StagePrompt, "Building prompt...")
	userPrompt := prompt.Build(prompt.ActionInspire, prompt.Input{
		Text:        kept,
		Instruction: extra,
		Context:     note.SurroundingContext(doc, bounds.Start, bounds.End),
	})

	content, err := r.complete(ctx, prompt.SystemPrompt(r.language), userPrompt)
	if err != nil {
		return nil, err
	}

	indent := 0
	if note.IsListItem(doc.Line(bounds.Start)) {
		prefix, _ := note.SplitPrefix(doc.Line(bounds.Start))
		indent = len(prefix)
	}

	bullets := note.FormatIdeas(content, indent)
	if len(bullets) == 0 {
		return nil, llm.ErrEmptyCompletion
	}

	r.progress(StageApply, "Inserting ideas...")
	return &Result{
		Message: "ideas inserted",
		apply: func(doc note.Document) {
			note.ReplaceParagraphWithIdeas(doc, bounds.Start, bounds.End, kept, bullets)
		},
	}, nil
}

// runCustom renders a user template and replaces the paragraph with the
// response.
func (r *Runner) runCustom(ctx context.Context, doc note.Document, bounds note.Bounds, text string, tmpl *Template) (*Result, error) {
	if tmpl == nil {
		return nil, ErrNoInstruction
	}

	r.progress(StagePrompt, "Building prompt...")
	userPrompt := prompt.PrependDirective(
		tmpl.Render(text, note.SurroundingContext(doc, bounds.Start, bounds.End)),
		r.language)

	content, err := r.complete(ctx, prompt.SystemPrompt(r.language), userPrompt)
	if err != nil {
		return nil, err
	}

	r.progress(StageApply, "Applying "+tmpl.Name+"...")
	return &Result{
		Message: tmpl.Name + " applied",
		apply: func(doc note.Document) {
			note.ReplaceParagraph(doc, bounds.Start, bounds.End, -1, content)
		},
	}, nil
}

// splitItems parses a comma-separated list the way annotation payloads are
// parsed: trimmed pieces, empties dropped, order kept.
func splitItems(s string) []string {
	var items []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			items = append(items, piece)
		}
	}
	return items
}
