package equiv

import "errors"

// ParseError indicates a raw command could not be tokenized.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Msg
}

// ErrMissingReference is returned when there is no reference answer to
// compare against. It is distinct from "compared and differs": callers must
// not treat it as an incorrect answer.
var ErrMissingReference = errors.New("no reference answer to compare against")
