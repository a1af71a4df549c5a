// Package wperror implements an error carrying one or more
// codes, each associated with a human readable message.
package wperror

// Error is an error holding ordered code and message pairs.
// The first pair added is the primary one.
type Error struct {
	codes    []string
	messages []string
}

// New creates an error with a primary code and message.
func New(code, message string) *Error {
	return &Error{
		codes:    []string{code},
		messages: []string{message},
	}
}

// Add appends a code and message pair to the error.
func (e *Error) Add(code, message string) {
	e.codes = append(e.codes, code)
	e.messages = append(e.messages, message)
}

// Codes returns a copy of all the error codes, in the order
// they were added. A code may appear more than once.
func (e *Error) Codes() (codes []string) {
	codes = make([]string, len(e.codes))
	copy(codes, e.codes)
	return codes
}

// Messages returns a copy of all the error messages,
// each matching the code at the same index.
func (e *Error) Messages() (messages []string) {
	messages = make([]string, len(e.messages))
	copy(messages, e.messages)
	return messages
}

func (e *Error) Code() string {
	if len(e.codes) == 0 {
		return ""
	}
	return e.codes[0]
}

func (e *Error) Message() string {
	if len(e.messages) == 0 {
		return ""
	}
	return e.messages[0]
}

// Error returns the primary pair formatted as `code: message`.
func (e *Error) Error() string {
	switch {
	case len(e.codes) == 0:
		return "unknown error"
	case e.codes[0] == "":
		return e.messages[0]
	default:
		return e.codes[0] + ": " + e.messages[0]
	}
}
