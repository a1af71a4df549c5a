package notice

import "html/template"

// Severity is the class of a message, also used as
// the class attribute of its HTML container.
type Severity string

const (
	Info  Severity = "info"
	Error Severity = "error"
)

type Message struct {
	Severity Severity
	Text     template.HTML
}
