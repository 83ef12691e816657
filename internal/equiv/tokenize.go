package equiv

import (
	"strings"
	"unicode"
)

// Tokenize splits a raw command line into unclassified tokens. Runs of
// whitespace separate tokens; a single- or double-quoted substring is kept
// as one token with its surrounding quotes stripped. An unterminated quote
// is a *ParseError.
func Tokenize(raw string) ([]Token, error) {
	var tokens []Token
	var cur strings.Builder
	inToken := false
	inQuote := false
	var quote rune

	flush := func() {
		if inToken {
			tokens = append(tokens, Token{Text: cur.String()})
			cur.Reset()
			inToken = false
		}
	}

	for _, r := range raw {
		switch {
		case inQuote:
			if r == quote {
				inQuote = false
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			inQuote = true
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}

	if inQuote {
		return nil, &ParseError{Msg: "unbalanced quote"}
	}
	flush()

	return tokens, nil
}
