package equiv

import "strings"

// resolve rewrites the fixed leading slots through the alias tables: token 0
// is the main command, token 1 the verb, token 2 the resource (only when a
// verb was seen). Unknown tokens pass through unchanged; flag markers stop
// slot consumption. Case is folded only where aliasing decisions are made:
// main command and verb are lowercased, a resource keeps its original casing
// unless an alias match replaces it, and everything else is left verbatim so
// user-chosen identifiers are never corrupted.
func (e *Engine) resolve(tokens []Token) (head, rest []Token) {
	i := 0

	if i < len(tokens) {
		text := strings.ToLower(tokens[i].Text)
		if canonical, ok := e.aliases.MainCommand[text]; ok {
			text = canonical
		}
		head = append(head, Token{Text: text, Kind: KindMainCommand})
		i++
	}

	verbSeen := false
	if i < len(tokens) && !isFlagMarker(tokens[i].Text) {
		text := strings.ToLower(tokens[i].Text)
		if canonical, ok := e.aliases.Verbs[text]; ok {
			text = canonical
		}
		head = append(head, Token{Text: text, Kind: KindVerb})
		verbSeen = true
		i++
	}

	if verbSeen && i < len(tokens) && !isFlagMarker(tokens[i].Text) {
		text := tokens[i].Text
		if canonical, ok := e.aliases.Resources[strings.ToLower(text)]; ok {
			text = canonical
		}
		head = append(head, Token{Text: text, Kind: KindResource})
		i++
	}

	return head, tokens[i:]
}

// isFlagMarker reports whether a token cannot occupy a verb or resource
// slot. The bare "--" separator counts: it begins the trailing-raw section.
func isFlagMarker(text string) bool {
	return strings.HasPrefix(text, "-") && text != "-"
}
