package types

import "time"

// Mode represents the current interaction mode
type Mode int

const (
	ModeSelectingSet Mode = iota
	ModeAnswering
	ModeFeedback
	ModeViewingProgress
	ModeError
)

// QuestionKind distinguishes what a question expects as an answer
type QuestionKind string

const (
	KindCommand  QuestionKind = "command"
	KindManifest QuestionKind = "manifest"
)

// GradeMethod records how a verdict was reached
type GradeMethod string

const (
	MethodStructural GradeMethod = "structural"
	MethodAIFallback GradeMethod = "ai-fallback"
)

// Verdict is the outcome of grading one submission
type Verdict struct {
	Correct bool
	Method  GradeMethod
	Detail  string
}

// AttemptEntry represents one graded submission in the progress log
type AttemptEntry struct {
	QuestionID string
	Submission string
	Correct    bool
	Method     GradeMethod
	Timestamp  time.Time
}

// ListItem represents an item that can be selected from a list
type ListItem struct {
	Title       string
	Description string
	Metadata    map[string]string
}

func (i ListItem) FilterValue() string {
	return i.Title
}
