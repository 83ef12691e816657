package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tapcraft-io/kubedrill/internal/grader"
	"github.com/tapcraft-io/kubedrill/internal/progress"
	"github.com/tapcraft-io/kubedrill/internal/question"
	"github.com/tapcraft-io/kubedrill/pkg/types"
)

// Model represents the application state
type Model struct {
	// UI Components
	setList       list.Model
	progressList  list.Model
	answerInput   textinput.Model
	manifestInput textarea.Model
	viewport      viewport.Model
	spinner       spinner.Model

	// Application State
	mode   types.Mode
	width  int
	height int

	// Drill State
	sets          []*question.Set
	activeSet     *question.Set
	questionIndex int
	lastVerdict   types.Verdict
	lastAnswer    string
	grading       bool
	hintShown     bool

	// Services
	grader   *grader.Grader
	progress *progress.Log

	// Flags
	quitting     bool
	err          error
	statusMsg    string
	ctrlCPressed int
	ctrlCTime    time.Time
}

// NewModel creates a new application model
func NewModel(sets []*question.Set, g *grader.Grader, log *progress.Log) Model {
	ti := textinput.New()
	ti.Placeholder = "kubectl ..."
	ti.CharLimit = 500
	ti.Width = 80

	ta := textarea.New()
	ta.Placeholder = "apiVersion: v1\nkind: Pod\n..."
	ta.SetWidth(80)
	ta.SetHeight(14)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	vp := viewport.New(80, 20)
	vp.Style = viewportStyle

	delegate := list.NewDefaultDelegate()
	sl := list.New(setItems(sets), delegate, 60, 20)
	sl.Title = "Choose a Question Set"
	sl.SetShowStatusBar(false)
	sl.SetFilteringEnabled(true)

	pl := list.New([]list.Item{}, delegate, 60, 20)
	pl.Title = "Attempt History"
	pl.SetShowStatusBar(false)
	pl.SetFilteringEnabled(true)

	return Model{
		setList:       sl,
		progressList:  pl,
		answerInput:   ti,
		manifestInput: ta,
		viewport:      vp,
		spinner:       s,
		mode:          types.ModeSelectingSet,
		sets:          sets,
		grader:        g,
		progress:      log,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return spinner.Tick
}

// Messages for async operations
type (
	gradeResultMsg struct {
		verdict    types.Verdict
		submission string
		err        error
	}
	errMsg struct{ err error }
)

// gradeSubmission grades an answer asynchronously so the AI fallback never
// blocks the UI.
func gradeSubmission(g *grader.Grader, q *question.Question, submission string) tea.Cmd {
	return func() tea.Msg {
		verdict, err := g.Grade(context.Background(), q, submission)
		return gradeResultMsg{verdict: verdict, submission: submission, err: err}
	}
}

// currentQuestion returns the question being answered, or nil when no set is
// active.
func (m Model) currentQuestion() *question.Question {
	if m.activeSet == nil || m.questionIndex >= len(m.activeSet.Questions) {
		return nil
	}
	return &m.activeSet.Questions[m.questionIndex]
}

// Item adapter for list.Item interface
type listItem struct {
	item types.ListItem
}

func (i listItem) FilterValue() string {
	return i.item.Title
}

func (i listItem) Title() string {
	return i.item.Title
}

func (i listItem) Description() string {
	return i.item.Description
}

// convertToListItems converts types.ListItem to list.Item
func convertToListItems(items []types.ListItem) []list.Item {
	result := make([]list.Item, len(items))
	for i, item := range items {
		result[i] = listItem{item: item}
	}
	return result
}

// setItems builds list items for the question-set picker.
func setItems(sets []*question.Set) []list.Item {
	items := make([]types.ListItem, len(sets))
	for i, set := range sets {
		desc := set.Description
		if desc == "" {
			desc = "question set"
		}
		items[i] = types.ListItem{
			Title:       set.Name,
			Description: desc,
			Metadata:    map[string]string{"index": strconv.Itoa(i)},
		}
	}
	return convertToListItems(items)
}

// IsQuitting reports whether the user has exited the drill.
func (m Model) IsQuitting() bool {
	return m.quitting
}
