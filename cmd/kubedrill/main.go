package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tapcraft-io/kubedrill/internal/config"
	"github.com/tapcraft-io/kubedrill/internal/equiv"
	"github.com/tapcraft-io/kubedrill/internal/grader"
	"github.com/tapcraft-io/kubedrill/internal/judge"
	"github.com/tapcraft-io/kubedrill/internal/progress"
	"github.com/tapcraft-io/kubedrill/internal/question"
	"github.com/tapcraft-io/kubedrill/internal/tui"
)

func main() {
	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Load built-in question sets
	sets, err := question.BuiltinSets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading built-in questions: %v\n", err)
		os.Exit(1)
	}

	// Load user question sets if the directory exists
	if _, statErr := os.Stat(cfg.QuestionsDir); statErr == nil {
		userSets, loadErr := question.LoadDir(cfg.QuestionsDir)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not load questions from %s: %v\n", cfg.QuestionsDir, loadErr)
		} else {
			sets = append(sets, userSets...)
		}
	}

	if len(sets) == 0 {
		fmt.Fprintf(os.Stderr, "No question sets available\n")
		os.Exit(1)
	}

	// Initialize attempt log
	log, err := progress.NewLog(cfg.ProgressSize, cfg.ProgressFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load progress: %v\n", err)
		// Continue without persisted progress
	}

	// Initialize the AI judge when an API key is configured
	var j judge.Judge
	if cfg.GeminiAPIKey != "" {
		gemini, judgeErr := judge.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if judgeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: AI review disabled: %v\n", judgeErr)
		} else {
			j = gemini
			defer gemini.Close()
		}
	}

	g := grader.New(equiv.NewDefaultEngine(), j)

	// Create and run the TUI
	model := tui.NewModel(sets, g, log)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	// Save progress before exiting
	if _, ok := finalModel.(tui.Model); ok {
		if log != nil {
			_ = log.Save()
		}
	}
}
