// Package equiv decides whether a user-submitted kubectl command or manifest
// is semantically equivalent to a reference answer. It reduces both sides to
// a canonical form (alias expansion, flag sorting, quote normalization,
// identity-field stripping) and compares the results. Every operation is a
// pure function over immutable inputs, so an Engine is safe for concurrent
// use without locking.
package equiv

import "strings"

// Engine canonicalizes commands against a fixed set of alias tables. The
// tables are captured at construction and never mutated afterwards.
type Engine struct {
	aliases Aliases
}

// NewEngine creates an engine with the given alias tables.
func NewEngine(aliases Aliases) *Engine {
	return &Engine{aliases: aliases}
}

// NewDefaultEngine creates an engine with the kubectl alias tables.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultAliases())
}

// NormalizeCommand reduces one command line to its canonical string:
// main command, verb, resource, positional arguments in original order,
// then flags sorted lexicographically. When a "--" separator is present the
// canonical form ends with "--" followed by the opaque trailing string.
// Normalization is idempotent.
func (e *Engine) NormalizeCommand(raw string) (string, error) {
	tokens, err := Tokenize(raw)
	if err != nil {
		return "", err
	}

	head, rest := e.resolve(tokens)
	scan := e.scanArgs(rest)

	parts := make([]string, 0, len(tokens))
	for _, t := range head {
		parts = append(parts, t.Text)
	}
	for _, t := range scan.Positionals {
		parts = append(parts, quoteIfNeeded(t.Text))
	}
	for _, f := range scan.Flags {
		parts = append(parts, f.render())
	}
	if scan.HasTrailing {
		parts = append(parts, "--")
		if scan.TrailingRaw != "" {
			parts = append(parts, scan.TrailingRaw)
		}
	}

	return strings.Join(parts, " "), nil
}

// NormalizeScript normalizes a multi-line submission line by line. Blank
// lines are skipped; the result preserves the order of the remaining lines.
func (e *Engine) NormalizeScript(raw string) ([]string, error) {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		canonical, err := e.NormalizeCommand(line)
		if err != nil {
			return nil, err
		}
		out = append(out, canonical)
	}
	return out, nil
}
