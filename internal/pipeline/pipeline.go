package pipeline

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for pipeline runs.
var (
	ErrStageFailed  = errors.New("pipeline stage failed")
	ErrStagePanic   = errors.New("pipeline stage panicked")
	ErrReservedRune = errors.New("input contains reserved placeholder characters")
)

// Stage names, in pipeline order.
const (
	StageNormalize      = "normalize"
	StageProtectCode    = "protect-code"
	StageUnorderedLists = "unordered-lists"
	StageOrderedLists   = "ordered-lists"
	StageEmphasis       = "emphasis"
	StageHeaders        = "headers"
	StageCodeBlocks     = "code-blocks"
	StageInlineCode     = "inline-code"
	StageBlockquotes    = "blockquotes"
	StageLinks          = "links"
	StageRevealCode     = "reveal-code"
	StageWhitespace     = "whitespace"
)

// Stage is one named rewrite rule.
type Stage struct {
	Name  string
	Apply func(string) (string, error)
}

// Transcoder defines the contract for Markdown to plain-text conversion.
type Transcoder interface {
	Run(ctx context.Context, input string) (string, error)
}

// Pipeline applies stages in a fixed order.
type Pipeline struct {
	stages []Stage
}

// New builds a pipeline from stages, in the given order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: append([]Stage(nil), stages...)}
}

// Default returns the LinkedIn transcoding pipeline.
func Default() *Pipeline {
	return New(
		Stage{Name: StageNormalize, Apply: normalize},
		Stage{Name: StageProtectCode, Apply: protectCode},
		Stage{Name: StageUnorderedLists, Apply: convertUnorderedLists},
		Stage{Name: StageOrderedLists, Apply: renumberOrderedLists},
		Stage{Name: StageEmphasis, Apply: convertEmphasis},
		Stage{Name: StageHeaders, Apply: convertHeaders},
		Stage{Name: StageCodeBlocks, Apply: renderCodeBlocks},
		Stage{Name: StageInlineCode, Apply: renderInlineCode},
		Stage{Name: StageBlockquotes, Apply: convertBlockquotes},
		Stage{Name: StageLinks, Apply: convertLinks},
		Stage{Name: StageRevealCode, Apply: revealCode},
		Stage{Name: StageWhitespace, Apply: normalizeWhitespace},
	)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run applies every stage to input. Empty input yields "".
// On any stage error, panic or context cancellation, Run returns the
// untouched input and the error.
func (p *Pipeline) Run(ctx context.Context, input string) (out string, err error) {
	if input == "" {
		return "", nil
	}

	current := ""
	defer func() {
		if r := recover(); r != nil {
			out = input
			err = fmt.Errorf("%w: %s: %v", ErrStagePanic, current, r)
		}
	}()

	text := input
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return input, err
		}

		current = stage.Name
		next, err := stage.Apply(text)
		if err != nil {
			return input, fmt.Errorf("%w: %s: %w", ErrStageFailed, stage.Name, err)
		}
		text = next
	}

	return text, nil
}
