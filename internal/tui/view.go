package tui

import (
	"fmt"
	"strings"

	"github.com/tapcraft-io/kubedrill/internal/question"
	"github.com/tapcraft-io/kubedrill/pkg/types"
)

// View renders the entire UI
func (m Model) View() string {
	if m.quitting {
		return "Keep drilling! 🧠\n"
	}

	if m.err != nil {
		return m.renderError()
	}

	switch m.mode {
	case types.ModeSelectingSet:
		return m.renderSelectingSetMode()
	case types.ModeAnswering:
		return m.renderAnsweringMode()
	case types.ModeFeedback:
		return m.renderFeedbackMode()
	case types.ModeViewingProgress:
		return m.renderViewingProgressMode()
	case types.ModeError:
		return m.renderError()
	default:
		return m.renderSelectingSetMode()
	}
}

// renderError renders an error screen
func (m Model) renderError() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Kubedrill", m.activeSetName()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(RenderIncorrect("Error: " + m.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelp("[Enter] to continue  [Ctrl+C Ctrl+C] quit"))

	return b.String()
}

// renderSelectingSetMode renders the question-set picker
func (m Model) renderSelectingSetMode() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Kubedrill", ""))
	b.WriteString("\n\n")

	b.WriteString(m.setList.View())
	b.WriteString("\n\n")

	if m.statusMsg != "" {
		b.WriteString(RenderInfo(m.statusMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelp("[↑↓] navigate  [Enter] start  [/] search  [Ctrl+R] progress  [Ctrl+C Ctrl+C] quit"))

	return b.String()
}

// renderAnsweringMode renders the current question and answer input
func (m Model) renderAnsweringMode() string {
	q := m.currentQuestion()
	if q == nil {
		return m.renderSelectingSetMode()
	}

	var b strings.Builder

	b.WriteString(RenderTitle("Kubedrill", m.activeSetName()))
	b.WriteString("\n\n")

	// Question counter and prompt
	counter := fmt.Sprintf("Question %d/%d", m.questionIndex+1, len(m.activeSet.Questions))
	b.WriteString(helpStyle.Render(counter))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(strings.TrimSpace(q.Prompt)))
	b.WriteString("\n\n")

	if m.hintShown && q.Hint != "" {
		b.WriteString(RenderInfo("Hint: " + q.Hint))
		b.WriteString("\n\n")
	}

	// Answer input
	if q.Kind == types.KindManifest {
		b.WriteString(m.manifestInput.View())
	} else {
		b.WriteString(inputMarkStyle.Render("$ "))
		b.WriteString(m.answerInput.View())
	}
	b.WriteString("\n\n")

	if m.grading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Checking your answer...\n\n")
	}

	if m.statusMsg != "" {
		b.WriteString(RenderInfo(m.statusMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderAnswerHelpBar(q))

	return b.String()
}

// renderFeedbackMode renders the verdict screen after grading
func (m Model) renderFeedbackMode() string {
	q := m.currentQuestion()
	if q == nil {
		return m.renderSelectingSetMode()
	}

	var b strings.Builder

	b.WriteString(RenderTitle("Kubedrill", m.activeSetName()))
	b.WriteString("\n\n")

	b.WriteString(promptStyle.Render(strings.TrimSpace(q.Prompt)))
	b.WriteString("\n\n")

	if m.lastVerdict.Correct {
		msg := "Correct!"
		if m.lastVerdict.Method == types.MethodAIFallback {
			msg = "Correct (AI review)"
		}
		b.WriteString(RenderCorrect(msg))
	} else {
		b.WriteString(RenderIncorrect("Not quite"))
	}
	b.WriteString("\n\n")

	b.WriteString(viewportStyle.Render(m.viewport.View()))
	b.WriteString("\n\n")

	b.WriteString(RenderHelp("[Enter/n] next  [r] retry  [↑↓] scroll  [Esc] back to sets"))

	return b.String()
}

// renderViewingProgressMode renders the attempt history
func (m Model) renderViewingProgressMode() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Kubedrill", m.activeSetName()))
	b.WriteString("\n\n")

	b.WriteString(m.progressList.View())
	b.WriteString("\n\n")

	b.WriteString(RenderHelp("[↑↓] navigate  [/] search  [Esc] back"))

	return b.String()
}

// renderAnswerHelpBar renders the help bar while answering
func (m Model) renderAnswerHelpBar(q *question.Question) string {
	items := []string{}
	if q.Kind == types.KindManifest {
		items = append(items, "[Ctrl+D] submit")
	} else {
		items = append(items, "[Enter] submit")
	}
	items = append(items,
		"[Ctrl+H] hint",
		"[Ctrl+R] progress",
		"[Esc] back",
		"[Ctrl+C Ctrl+C] quit",
	)
	return RenderHelp(strings.Join(items, "  "))
}

// activeSetName returns the active set's name, or empty when none is active.
func (m Model) activeSetName() string {
	if m.activeSet == nil {
		return ""
	}
	return m.activeSet.Name
}
