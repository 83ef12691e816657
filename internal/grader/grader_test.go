package grader

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tapcraft-io/kubedrill/internal/equiv"
	"github.com/tapcraft-io/kubedrill/internal/question"
	"github.com/tapcraft-io/kubedrill/pkg/types"
)

// fakeJudge returns a fixed verdict or error.
type fakeJudge struct {
	verdict bool
	err     error
	calls   int
}

func (f *fakeJudge) Equivalent(ctx context.Context, prompt, reference, submission string) (bool, error) {
	f.calls++
	return f.verdict, f.err
}

func commandQuestion(answers ...string) *question.Question {
	return &question.Question{
		ID:      "q",
		Prompt:  "List pods.",
		Kind:    types.KindCommand,
		Answers: answers,
	}
}

func TestGradeCommand_Structural(t *testing.T) {
	g := New(equiv.NewDefaultEngine(), nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		submission string
		answers    []string
		correct    bool
	}{
		{
			name:       "Exact match",
			submission: "kubectl get pods",
			answers:    []string{"kubectl get pods"},
			correct:    true,
		},
		{
			name:       "Alias match",
			submission: "k get po",
			answers:    []string{"kubectl get pods"},
			correct:    true,
		},
		{
			name:       "Second reference matches",
			submission: "kubectl get pods --watch",
			answers:    []string{"kubectl get pods", "kubectl get pods -w"},
			correct:    true,
		},
		{
			name:       "No match",
			submission: "kubectl get services",
			answers:    []string{"kubectl get pods"},
			correct:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := g.GradeCommand(ctx, commandQuestion(tt.answers...), tt.submission)
			if err != nil {
				t.Fatalf("GradeCommand returned error: %v", err)
			}
			if verdict.Correct != tt.correct {
				t.Errorf("Correct = %v, want %v", verdict.Correct, tt.correct)
			}
			if verdict.Method != types.MethodStructural {
				t.Errorf("Method = %v, want structural", verdict.Method)
			}
		})
	}
}

func TestGradeCommand_ParseErrorBecomesVerdict(t *testing.T) {
	g := New(equiv.NewDefaultEngine(), nil)

	verdict, err := g.GradeCommand(context.Background(), commandQuestion("kubectl get pods"), `kubectl get "broken`)
	if err != nil {
		t.Fatalf("A user parse failure should grade, not error: %v", err)
	}
	if verdict.Correct {
		t.Error("Unparseable submission must not be correct")
	}
	if !strings.Contains(verdict.Detail, "could not be parsed") {
		t.Errorf("Verdict detail %q should explain the parse failure", verdict.Detail)
	}
}

func TestGradeCommand_BadReferenceIsAnError(t *testing.T) {
	g := New(equiv.NewDefaultEngine(), nil)

	_, err := g.GradeCommand(context.Background(), commandQuestion(`kubectl get "broken`), "kubectl get pods")
	if err == nil {
		t.Fatal("A reference answer that does not parse is a configuration error")
	}
	var parseErr *equiv.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected wrapped *ParseError, got %v", err)
	}
}

func TestGradeCommand_MissingReference(t *testing.T) {
	g := New(equiv.NewDefaultEngine(), nil)

	_, err := g.GradeCommand(context.Background(), commandQuestion(), "kubectl get pods")
	if !errors.Is(err, equiv.ErrMissingReference) {
		t.Errorf("Expected ErrMissingReference, got %v", err)
	}
}

func TestGradeCommand_JudgeFallback(t *testing.T) {
	tests := []struct {
		name      string
		judge     *fakeJudge
		correct   bool
		method    types.GradeMethod
		wantCalls int
	}{
		{
			name:      "Judge accepts",
			judge:     &fakeJudge{verdict: true},
			correct:   true,
			method:    types.MethodAIFallback,
			wantCalls: 1,
		},
		{
			name:      "Judge rejects",
			judge:     &fakeJudge{verdict: false},
			correct:   false,
			method:    types.MethodAIFallback,
			wantCalls: 1,
		},
		{
			name:      "Judge failure falls back to structural",
			judge:     &fakeJudge{err: errors.New("network down")},
			correct:   false,
			method:    types.MethodStructural,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(equiv.NewDefaultEngine(), tt.judge)
			verdict, err := g.GradeCommand(context.Background(), commandQuestion("kubectl get pods"), "kubectl get services")
			if err != nil {
				t.Fatalf("GradeCommand returned error: %v", err)
			}
			if verdict.Correct != tt.correct {
				t.Errorf("Correct = %v, want %v", verdict.Correct, tt.correct)
			}
			if verdict.Method != tt.method {
				t.Errorf("Method = %v, want %v", verdict.Method, tt.method)
			}
			if tt.judge.calls != tt.wantCalls {
				t.Errorf("Judge called %d times, want %d", tt.judge.calls, tt.wantCalls)
			}
		})
	}
}

func TestGradeCommand_JudgeSkippedWhenStructuralMatch(t *testing.T) {
	j := &fakeJudge{verdict: false}
	g := New(equiv.NewDefaultEngine(), j)

	verdict, err := g.GradeCommand(context.Background(), commandQuestion("kubectl get pods"), "k get po")
	if err != nil {
		t.Fatalf("GradeCommand returned error: %v", err)
	}
	if !verdict.Correct {
		t.Error("Structural match should be correct")
	}
	if j.calls != 0 {
		t.Errorf("Judge should not be consulted on a structural match, called %d times", j.calls)
	}
}

func TestGradeManifest(t *testing.T) {
	g := New(equiv.NewDefaultEngine(), nil)
	q := &question.Question{
		ID:     "pod",
		Prompt: "Write a busybox pod.",
		Kind:   types.KindManifest,
		Manifest: `
apiVersion: v1
kind: Pod
metadata:
  name: cmd-args
spec:
  containers:
    - name: c
      image: busybox
`,
	}

	tests := []struct {
		name       string
		submission string
		correct    bool
	}{
		{
			name: "Equivalent with different names",
			submission: `
apiVersion: v1
kind: Pod
metadata:
  name: my-pod
spec:
  containers:
    - name: whatever
      image: busybox
`,
			correct: true,
		},
		{
			name: "Different image",
			submission: `
apiVersion: v1
kind: Pod
metadata:
  name: my-pod
spec:
  containers:
    - name: whatever
      image: alpine
`,
			correct: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := g.GradeManifest(context.Background(), q, tt.submission)
			if err != nil {
				t.Fatalf("GradeManifest returned error: %v", err)
			}
			if verdict.Correct != tt.correct {
				t.Errorf("Correct = %v, want %v", verdict.Correct, tt.correct)
			}
		})
	}
}

func TestGradeManifest_UnparseableSubmission(t *testing.T) {
	g := New(equiv.NewDefaultEngine(), nil)
	q := &question.Question{
		ID:       "pod",
		Prompt:   "Write a pod.",
		Kind:     types.KindManifest,
		Manifest: "apiVersion: v1\nkind: Pod\n",
	}

	verdict, err := g.GradeManifest(context.Background(), q, "{not yaml or json")
	if err != nil {
		t.Fatalf("An unparseable submission should grade, not error: %v", err)
	}
	if verdict.Correct {
		t.Error("Unparseable manifest must not be correct")
	}
	if !strings.Contains(verdict.Detail, "could not be parsed") {
		t.Errorf("Verdict detail %q should explain the parse failure", verdict.Detail)
	}
}

func TestGrade_Dispatch(t *testing.T) {
	g := New(equiv.NewDefaultEngine(), nil)

	if _, err := g.Grade(context.Background(), &question.Question{ID: "x", Kind: "essay"}, "answer"); err == nil {
		t.Error("Unknown question kind should be an error")
	}
}
