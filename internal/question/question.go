// Package question loads drill question sets and owns the manifest parsing
// boundary: the equivalence engine only ever sees parsed trees.
package question

import (
	"fmt"

	"github.com/tapcraft-io/kubedrill/pkg/types"
)

// Question is one drill prompt with its reference answer(s).
type Question struct {
	ID     string             `yaml:"id"`
	Prompt string             `yaml:"prompt"`
	Kind   types.QuestionKind `yaml:"kind"`

	// Answers holds reference command lines for command questions. Any one
	// of them counts as correct.
	Answers []string `yaml:"answers,omitempty"`

	// Manifest holds the reference YAML document for manifest questions.
	Manifest string `yaml:"manifest,omitempty"`

	Hint        string `yaml:"hint,omitempty"`
	Explanation string `yaml:"explanation,omitempty"`
}

// Set is a named collection of questions.
type Set struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Questions   []Question `yaml:"questions"`
}

// Validate checks a set for the mistakes that would otherwise surface as
// confusing grading behavior mid-drill.
func (s *Set) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("question set has no name")
	}
	if len(s.Questions) == 0 {
		return fmt.Errorf("question set %q has no questions", s.Name)
	}

	seen := make(map[string]struct{}, len(s.Questions))
	for i, q := range s.Questions {
		if q.ID == "" {
			return fmt.Errorf("set %q: question %d has no id", s.Name, i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("set %q: duplicate question id %q", s.Name, q.ID)
		}
		seen[q.ID] = struct{}{}

		if q.Prompt == "" {
			return fmt.Errorf("set %q: question %q has no prompt", s.Name, q.ID)
		}

		switch q.Kind {
		case types.KindCommand:
			if len(q.Answers) == 0 {
				return fmt.Errorf("set %q: command question %q has no reference answers", s.Name, q.ID)
			}
		case types.KindManifest:
			if q.Manifest == "" {
				return fmt.Errorf("set %q: manifest question %q has no reference manifest", s.Name, q.ID)
			}
			if _, err := DecodeManifest([]byte(q.Manifest)); err != nil {
				return fmt.Errorf("set %q: question %q reference manifest: %w", s.Name, q.ID, err)
			}
		default:
			return fmt.Errorf("set %q: question %q has unknown kind %q", s.Name, q.ID, q.Kind)
		}
	}

	return nil
}
