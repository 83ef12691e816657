package question

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions/*.yaml
var builtin embed.FS

// LoadSet reads and validates one question-set file.
func LoadSet(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseSet(data, path)
}

// LoadDir loads every .yaml/.yml file in dir as a question set, in lexical
// file order.
func LoadDir(dir string) ([]*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	sets := make([]*Set, 0, len(paths))
	for _, path := range paths {
		set, err := LoadSet(path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// BuiltinSets returns the question sets compiled into the binary, so the
// drill works with no external files.
func BuiltinSets() ([]*Set, error) {
	entries, err := builtin.ReadDir("questions")
	if err != nil {
		return nil, err
	}

	var sets []*Set
	for _, entry := range entries {
		data, err := builtin.ReadFile("questions/" + entry.Name())
		if err != nil {
			return nil, err
		}
		set, err := parseSet(data, entry.Name())
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func parseSet(data []byte, source string) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &set, nil
}
