package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tapcraft-io/kubedrill/pkg/types"
)

// Update handles all state updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 10
		m.setList.SetWidth(msg.Width - 4)
		m.setList.SetHeight(msg.Height - 6)
		m.progressList.SetWidth(msg.Width - 4)
		m.progressList.SetHeight(msg.Height - 6)
		m.answerInput.Width = msg.Width - 6
		m.manifestInput.SetWidth(msg.Width - 6)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case gradeResultMsg:
		m.grading = false
		if msg.err != nil {
			m.err = msg.err
			m.mode = types.ModeError
			return m, nil
		}
		m.lastVerdict = msg.verdict
		m.lastAnswer = msg.submission
		if q := m.currentQuestion(); q != nil && m.progress != nil {
			m.progress.Add(q.ID, msg.submission, msg.verdict)
			_ = m.progress.Save()
		}
		m.viewport.SetContent(m.feedbackContent())
		m.viewport.GotoTop()
		m.mode = types.ModeFeedback

	case errMsg:
		m.err = msg.err
		m.mode = types.ModeError

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Update active component based on mode
	switch m.mode {
	case types.ModeSelectingSet:
		m.setList, cmd = m.setList.Update(msg)
		cmds = append(cmds, cmd)

	case types.ModeAnswering:
		if q := m.currentQuestion(); q != nil && q.Kind == types.KindManifest {
			m.manifestInput, cmd = m.manifestInput.Update(msg)
		} else {
			m.answerInput, cmd = m.answerInput.Update(msg)
		}
		cmds = append(cmds, cmd)

	case types.ModeFeedback:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case types.ModeViewingProgress:
		m.progressList, cmd = m.progressList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keybindings
	switch msg.String() {
	case "ctrl+c":
		now := time.Now()
		if now.Sub(m.ctrlCTime) > time.Second {
			m.ctrlCPressed = 0
		}

		m.ctrlCPressed++
		m.ctrlCTime = now

		// Require double Ctrl+C to quit
		if m.ctrlCPressed >= 2 {
			m.quitting = true
			return m, tea.Quit
		}

		m.statusMsg = "Press Ctrl+C again to quit"
		return m, nil
	}

	if msg.String() != "ctrl+c" {
		m.ctrlCPressed = 0
	}

	switch m.mode {
	case types.ModeSelectingSet:
		return m.handleSelectingSetMode(msg)

	case types.ModeAnswering:
		return m.handleAnsweringMode(msg)

	case types.ModeFeedback:
		return m.handleFeedbackMode(msg)

	case types.ModeViewingProgress:
		return m.handleViewingProgressMode(msg)

	case types.ModeError:
		switch msg.String() {
		case "enter", "esc":
			m.err = nil
			m.mode = types.ModeSelectingSet
		}
		return m, nil
	}

	return m, nil
}

// handleSelectingSetMode handles key presses in the set picker
func (m Model) handleSelectingSetMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.setList.FilterState() != list.Filtering {
			index := m.setList.Index()
			if index >= 0 && index < len(m.sets) {
				m.activeSet = m.sets[index]
				m.questionIndex = 0
				return m.startQuestion()
			}
		}

	case "ctrl+r":
		return m.showProgress()
	}

	var cmd tea.Cmd
	m.setList, cmd = m.setList.Update(msg)
	return m, cmd
}

// handleAnsweringMode handles key presses while answering a question
func (m Model) handleAnsweringMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.currentQuestion()
	if q == nil {
		m.mode = types.ModeSelectingSet
		return m, nil
	}

	if m.grading {
		// Ignore input while a grade is in flight
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.activeSet = nil
		m.mode = types.ModeSelectingSet
		return m, nil

	case "ctrl+h":
		if q.Hint != "" {
			m.hintShown = true
		} else {
			m.statusMsg = "No hint for this question"
		}
		return m, nil

	case "ctrl+r":
		return m.showProgress()

	case "enter":
		// Manifest answers are multi-line; enter inserts a newline and
		// ctrl+d submits instead.
		if q.Kind != types.KindManifest {
			return m.submitAnswer(m.answerInput.Value())
		}

	case "ctrl+d":
		if q.Kind == types.KindManifest {
			return m.submitAnswer(m.manifestInput.Value())
		}
	}

	var cmd tea.Cmd
	if q.Kind == types.KindManifest {
		m.manifestInput, cmd = m.manifestInput.Update(msg)
	} else {
		m.answerInput, cmd = m.answerInput.Update(msg)
	}
	return m, cmd
}

// handleFeedbackMode handles key presses on the verdict screen
func (m Model) handleFeedbackMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "n":
		m.questionIndex++
		if m.questionIndex >= len(m.activeSet.Questions) {
			m.statusMsg = fmt.Sprintf("Finished %q", m.activeSet.Name)
			m.activeSet = nil
			m.mode = types.ModeSelectingSet
			return m, nil
		}
		return m.startQuestion()

	case "r":
		// Retry the same question
		return m.startQuestion()

	case "esc":
		m.activeSet = nil
		m.mode = types.ModeSelectingSet
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleViewingProgressMode handles key presses in the attempt history
func (m Model) handleViewingProgressMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.activeSet != nil {
			m.mode = types.ModeAnswering
		} else {
			m.mode = types.ModeSelectingSet
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.progressList, cmd = m.progressList.Update(msg)
	return m, cmd
}

// startQuestion resets the inputs for the current question
func (m Model) startQuestion() (tea.Model, tea.Cmd) {
	q := m.currentQuestion()
	if q == nil {
		m.mode = types.ModeSelectingSet
		return m, nil
	}

	m.mode = types.ModeAnswering
	m.statusMsg = ""
	m.hintShown = false

	if q.Kind == types.KindManifest {
		m.manifestInput.Reset()
		m.manifestInput.Focus()
		m.answerInput.Blur()
		return m, textarea.Blink
	}

	m.answerInput.SetValue("")
	m.answerInput.Focus()
	m.manifestInput.Blur()
	return m, textinput.Blink
}

// submitAnswer kicks off asynchronous grading
func (m Model) submitAnswer(submission string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(submission) == "" {
		m.statusMsg = "Please enter an answer"
		return m, nil
	}

	q := m.currentQuestion()
	if q == nil || m.grader == nil {
		return m, nil
	}

	m.grading = true
	m.statusMsg = ""
	return m, tea.Batch(
		spinner.Tick,
		gradeSubmission(m.grader, q, submission),
	)
}

// showProgress opens the attempt history list
func (m Model) showProgress() (tea.Model, tea.Cmd) {
	if m.progress == nil {
		return m, nil
	}
	entries := m.progress.GetAll()
	m.progressList.SetItems(convertToListItems(m.progress.ToListItems(entries)))
	m.mode = types.ModeViewingProgress
	return m, nil
}

// feedbackContent builds the text shown after grading
func (m Model) feedbackContent() string {
	q := m.currentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Your answer:\n")
	b.WriteString(m.lastAnswer)
	b.WriteString("\n")

	if !m.lastVerdict.Correct {
		b.WriteString("\nReference answer:\n")
		if q.Kind == types.KindManifest {
			b.WriteString(strings.TrimSpace(q.Manifest))
		} else {
			b.WriteString(strings.Join(q.Answers, "\n  or\n"))
		}
		b.WriteString("\n")
	}

	if m.lastVerdict.Detail != "" {
		b.WriteString("\n")
		b.WriteString(m.lastVerdict.Detail)
		b.WriteString("\n")
	}

	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(q.Explanation))
		b.WriteString("\n")
	}

	return b.String()
}
