package humanize

// ParseError is returned for any input the package refuses: negative
// durations, unparseable duration text and malformed timestamps.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func parseErr(msg string) *ParseError {
	return &ParseError{Msg: msg}
}
