package equiv

import (
	"sort"
	"strings"
)

// flagArg is one canonicalized flag: a long-form name with leading dashes
// and an optional value.
type flagArg struct {
	Name     string
	Value    string
	HasValue bool
}

// render produces the comparison form of a flag, "--name" or "--name value".
// Flags are sorted by this string, which is what makes flag order irrelevant.
// A value containing whitespace is re-quoted so the canonical string
// tokenizes back to the same flag.
func (f flagArg) render() string {
	if f.HasValue {
		return f.Name + " " + quoteIfNeeded(f.Value)
	}
	return f.Name
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t") {
		return s
	}
	if strings.Contains(s, "'") {
		return `"` + s + `"`
	}
	return "'" + s + "'"
}

// argScan is the classification of everything after the fixed leading slots.
type argScan struct {
	Positionals []Token
	Flags       []flagArg
	TrailingRaw string
	HasTrailing bool
}

// scanArgs classifies the remaining tokens into positional arguments, flags,
// and an optional trailing-raw section. A token starting with "-" opens a
// flag: "--name=value" splits at the first "=", otherwise the next token is
// consumed as the value unless it also starts with "-". A literal "--" ends
// the scan; everything after it is rejoined into one opaque string with a
// single matching pair of outer quotes stripped.
func (e *Engine) scanArgs(tokens []Token) argScan {
	var scan argScan

	for i := 0; i < len(tokens); i++ {
		text := tokens[i].Text

		if text == "--" {
			parts := make([]string, 0, len(tokens)-i-1)
			for _, t := range tokens[i+1:] {
				parts = append(parts, t.Text)
			}
			scan.TrailingRaw = renderTrailingRaw(stripOuterQuotes(strings.Join(parts, " ")))
			scan.HasTrailing = true
			break
		}

		if isFlagMarker(text) {
			flag := flagArg{Name: text}
			if idx := strings.Index(text, "="); idx >= 0 {
				flag.Name = text[:idx]
				flag.Value = text[idx+1:]
				flag.HasValue = true
			} else if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1].Text, "-") {
				flag.Value = tokens[i+1].Text
				flag.HasValue = true
				i++
			}
			flag.Name = e.expandFlagName(flag.Name)
			scan.Flags = append(scan.Flags, flag)
			continue
		}

		scan.Positionals = append(scan.Positionals, Token{Text: text, Kind: KindPositionalArg})
	}

	sort.Slice(scan.Flags, func(i, j int) bool {
		return scan.Flags[i].render() < scan.Flags[j].render()
	})

	return scan
}

// expandFlagName resolves a short flag like "-n" to its long form
// "--namespace" via the flag alias table. Long flags and unrecognized
// shorts are kept as-is.
func (e *Engine) expandFlagName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	short := strings.TrimPrefix(name, "-")
	if long, ok := e.aliases.Flags[short]; ok {
		return "--" + long
	}
	return name
}

// renderTrailingRaw puts the joined post-separator text into a form that
// tokenizes back to itself. Content free of quote characters has its
// whitespace runs collapsed, matching what re-tokenization would do; content
// that still holds quote characters is wrapped in the other quote style so a
// second pass reads it as one token with the inner quotes intact.
func renderTrailingRaw(s string) string {
	if strings.ContainsAny(s, `'"`) {
		if strings.Contains(s, "'") {
			return `"` + s + `"`
		}
		return "'" + s + "'"
	}
	return strings.Join(strings.Fields(s), " ")
}

// stripOuterQuotes removes one level of matching surrounding quotes.
func stripOuterQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
