package equiv

// TokenKind classifies a token once the alias resolver has seen it.
type TokenKind int

const (
	KindUnclassified TokenKind = iota
	KindMainCommand
	KindVerb
	KindResource
	KindPositionalArg
	KindFlagName
	KindFlagValue
	KindTrailingRaw
)

// Token is a single quote-aware word of a command, tagged with its role.
type Token struct {
	Text string
	Kind TokenKind
}

func (k TokenKind) String() string {
	switch k {
	case KindMainCommand:
		return "main-command"
	case KindVerb:
		return "verb"
	case KindResource:
		return "resource"
	case KindPositionalArg:
		return "positional"
	case KindFlagName:
		return "flag-name"
	case KindFlagValue:
		return "flag-value"
	case KindTrailingRaw:
		return "trailing-raw"
	default:
		return "unclassified"
	}
}
