// Package progress keeps the attempt log: every graded submission, newest
// first, persisted as JSON under the config directory.
package progress

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/tapcraft-io/kubedrill/pkg/types"
)

// Log manages the attempt history.
type Log struct {
	attempts []types.AttemptEntry
	maxSize  int
	filepath string
	mu       sync.RWMutex
}

// NewLog creates an attempt log, loading any existing file.
func NewLog(maxSize int, filepath string) (*Log, error) {
	l := &Log{
		attempts: make([]types.AttemptEntry, 0, maxSize),
		maxSize:  maxSize,
		filepath: filepath,
	}

	if err := l.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return l, nil
}

// Add records a graded submission.
func (l *Log) Add(questionID, submission string, verdict types.Verdict) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := types.AttemptEntry{
		QuestionID: questionID,
		Submission: submission,
		Correct:    verdict.Correct,
		Method:     verdict.Method,
		Timestamp:  time.Now(),
	}

	// Newest first
	l.attempts = append([]types.AttemptEntry{entry}, l.attempts...)

	if len(l.attempts) > l.maxSize {
		l.attempts = l.attempts[:l.maxSize]
	}
}

// Get returns the most recent n attempts.
func (l *Log) Get(n int) []types.AttemptEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.attempts) {
		n = len(l.attempts)
	}

	result := make([]types.AttemptEntry, n)
	copy(result, l.attempts[:n])
	return result
}

// GetAll returns all attempts.
func (l *Log) GetAll() []types.AttemptEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]types.AttemptEntry, len(l.attempts))
	copy(result, l.attempts)
	return result
}

// Search fuzzy-matches attempts by submission text.
func (l *Log) Search(query string) []types.AttemptEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if query == "" {
		result := make([]types.AttemptEntry, len(l.attempts))
		copy(result, l.attempts)
		return result
	}

	submissions := make([]string, len(l.attempts))
	for i, entry := range l.attempts {
		submissions[i] = entry.Submission
	}

	matches := fuzzy.Find(query, submissions)

	result := make([]types.AttemptEntry, 0, len(matches))
	for _, match := range matches {
		if match.Index < len(l.attempts) {
			result = append(result, l.attempts[match.Index])
		}
	}

	return result
}

// Stats returns how often a question was attempted and how often it was
// answered correctly.
func (l *Log) Stats(questionID string) (attempts, correct int) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, entry := range l.attempts {
		if entry.QuestionID != questionID {
			continue
		}
		attempts++
		if entry.Correct {
			correct++
		}
	}
	return attempts, correct
}

// Save persists the log to disk.
func (l *Log) Save() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	data, err := json.MarshalIndent(l.attempts, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(l.filepath, data, 0644)
}

// Load loads the log from disk.
func (l *Log) Load() error {
	data, err := os.ReadFile(l.filepath)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return json.Unmarshal(data, &l.attempts)
}

// Clear removes all attempts.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts = make([]types.AttemptEntry, 0, l.maxSize)
}

// ToListItems converts attempts to list items for display.
func (l *Log) ToListItems(entries []types.AttemptEntry) []types.ListItem {
	items := make([]types.ListItem, len(entries))
	for i, entry := range entries {
		desc := entry.Timestamp.Format("2006-01-02 15:04:05") + " | " + entry.QuestionID
		if entry.Correct {
			desc += " | ✓ correct"
		} else {
			desc += " | ✗ incorrect"
		}
		if entry.Method == types.MethodAIFallback {
			desc += " (AI)"
		}

		items[i] = types.ListItem{
			Title:       entry.Submission,
			Description: desc,
			Metadata: map[string]string{
				"question":  entry.QuestionID,
				"timestamp": entry.Timestamp.Format(time.RFC3339),
				"method":    string(entry.Method),
			},
		}
	}
	return items
}
