// Package grader turns engine comparisons into user-facing verdicts and
// decides when to consult the AI fallback.
package grader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tapcraft-io/kubedrill/internal/equiv"
	"github.com/tapcraft-io/kubedrill/internal/judge"
	"github.com/tapcraft-io/kubedrill/internal/question"
	"github.com/tapcraft-io/kubedrill/pkg/types"
)

// Grader grades submissions against a question's reference answers. A nil
// judge disables the AI fallback; verdicts are then purely structural.
type Grader struct {
	engine *equiv.Engine
	judge  judge.Judge
}

// New creates a grader.
func New(engine *equiv.Engine, j judge.Judge) *Grader {
	return &Grader{engine: engine, judge: j}
}

// Grade dispatches on the question kind.
func (g *Grader) Grade(ctx context.Context, q *question.Question, submission string) (types.Verdict, error) {
	switch q.Kind {
	case types.KindCommand:
		return g.GradeCommand(ctx, q, submission)
	case types.KindManifest:
		return g.GradeManifest(ctx, q, submission)
	default:
		return types.Verdict{}, fmt.Errorf("unknown question kind %q", q.Kind)
	}
}

// GradeCommand grades a command submission. Any one of the question's
// reference answers counts as correct. A submission that does not tokenize
// is an incorrect verdict carrying the parse detail, not an internal error;
// a reference answer that does not tokenize is a configuration problem and
// is returned as an error.
func (g *Grader) GradeCommand(ctx context.Context, q *question.Question, submission string) (types.Verdict, error) {
	if len(q.Answers) == 0 {
		return types.Verdict{}, equiv.ErrMissingReference
	}

	// Surface submission parse failures before comparing, so a later
	// reference-side error is unambiguously ours to propagate.
	if _, err := g.engine.NormalizeScript(submission); err != nil {
		var parseErr *equiv.ParseError
		if errors.As(err, &parseErr) {
			return types.Verdict{
				Correct: false,
				Method:  types.MethodStructural,
				Detail:  "your command could not be parsed: " + parseErr.Msg,
			}, nil
		}
		return types.Verdict{}, err
	}

	for _, reference := range q.Answers {
		ok, err := g.engine.CommandsEquivalent(submission, reference)
		if err != nil {
			return types.Verdict{}, fmt.Errorf("reference answer for %q: %w", q.ID, err)
		}
		if ok {
			return types.Verdict{Correct: true, Method: types.MethodStructural}, nil
		}
	}

	return g.consultJudge(ctx, q, q.Answers[0], submission)
}

// GradeManifest grades a manifest submission. The raw text is decoded at
// this boundary; the engine only compares parsed trees.
func (g *Grader) GradeManifest(ctx context.Context, q *question.Question, submission string) (types.Verdict, error) {
	if strings.TrimSpace(q.Manifest) == "" {
		return types.Verdict{}, equiv.ErrMissingReference
	}

	reference, err := question.DecodeManifest([]byte(q.Manifest))
	if err != nil {
		return types.Verdict{}, fmt.Errorf("reference manifest for %q: %w", q.ID, err)
	}

	user, err := question.DecodeManifest([]byte(submission))
	if err != nil {
		return types.Verdict{
			Correct: false,
			Method:  types.MethodStructural,
			Detail:  "your manifest could not be parsed: " + err.Error(),
		}, nil
	}

	if g.engine.ManifestsEquivalent(user, reference) {
		return types.Verdict{Correct: true, Method: types.MethodStructural}, nil
	}

	return g.consultJudge(ctx, q, q.Manifest, submission)
}

// consultJudge asks the AI fallback about a structurally incorrect answer.
// A judge failure never blocks grading: the structural verdict stands.
func (g *Grader) consultJudge(ctx context.Context, q *question.Question, reference, submission string) (types.Verdict, error) {
	structural := types.Verdict{Correct: false, Method: types.MethodStructural}
	if g.judge == nil {
		return structural, nil
	}

	ok, err := g.judge.Equivalent(ctx, q.Prompt, reference, submission)
	if err != nil {
		structural.Detail = "AI review unavailable"
		return structural, nil
	}
	if !ok {
		return types.Verdict{Correct: false, Method: types.MethodAIFallback}, nil
	}
	return types.Verdict{
		Correct: true,
		Method:  types.MethodAIFallback,
		Detail:  "accepted by AI review",
	}, nil
}
