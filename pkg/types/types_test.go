package types

import (
	"testing"
	"time"
)

func TestListItem_FilterValue(t *testing.T) {
	item := ListItem{
		Title:       "kubectl basics",
		Description: "8 questions",
		Metadata:    map[string]string{"index": "0"},
	}

	if item.FilterValue() != "kubectl basics" {
		t.Errorf("FilterValue() = %s, want %s", item.FilterValue(), "kubectl basics")
	}
}

func TestVerdict_Structure(t *testing.T) {
	v := Verdict{
		Correct: true,
		Method:  MethodStructural,
		Detail:  "",
	}

	if !v.Correct {
		t.Error("Expected verdict to be correct")
	}
	if v.Method != MethodStructural {
		t.Errorf("Method = %s, want %s", v.Method, MethodStructural)
	}
}

func TestAttemptEntry_Structure(t *testing.T) {
	entry := AttemptEntry{
		QuestionID: "list-pods",
		Submission: "kubectl get pods",
		Correct:    true,
		Method:     MethodStructural,
		Timestamp:  time.Now(),
	}

	if entry.QuestionID != "list-pods" {
		t.Errorf("QuestionID = %s, want list-pods", entry.QuestionID)
	}
	if entry.Submission != "kubectl get pods" {
		t.Errorf("Submission = %s, want 'kubectl get pods'", entry.Submission)
	}
	if !entry.Correct {
		t.Error("Expected correct to be true")
	}
}

func TestMode_Values(t *testing.T) {
	modes := []Mode{
		ModeSelectingSet,
		ModeAnswering,
		ModeFeedback,
		ModeViewingProgress,
		ModeError,
	}

	// Check that modes are unique
	seen := make(map[Mode]bool)
	for _, mode := range modes {
		if seen[mode] {
			t.Errorf("Duplicate mode value: %v", mode)
		}
		seen[mode] = true
	}

	if len(seen) != 5 {
		t.Errorf("Expected 5 unique modes, got %d", len(seen))
	}
}

func TestQuestionKind_Values(t *testing.T) {
	kinds := []QuestionKind{KindCommand, KindManifest}

	seen := make(map[QuestionKind]bool)
	for _, k := range kinds {
		if seen[k] {
			t.Errorf("Duplicate question kind: %v", k)
		}
		seen[k] = true
	}

	if len(seen) != 2 {
		t.Errorf("Expected 2 unique kinds, got %d", len(seen))
	}
}

func TestGradeMethod_Values(t *testing.T) {
	if MethodStructural == MethodAIFallback {
		t.Error("Grade methods should be distinct")
	}
}

func TestListItem_WithMetadata(t *testing.T) {
	metadata := map[string]string{
		"question": "list-pods",
		"method":   "structural",
	}

	item := ListItem{
		Title:       "kubectl get pods",
		Description: "✓ correct",
		Metadata:    metadata,
	}

	if item.Metadata["question"] != "list-pods" {
		t.Errorf("Question = %s, want list-pods", item.Metadata["question"])
	}
	if len(item.Metadata) != 2 {
		t.Errorf("Expected 2 metadata entries, got %d", len(item.Metadata))
	}
}
