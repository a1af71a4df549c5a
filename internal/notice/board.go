package notice

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/qdm12/debug-cron/internal/wperror"
)

// Board holds messages grouped by severity, keeping the order
// in which each severity was first used. It is not safe for
// concurrent use and is meant to live for a single request.
type Board struct {
	buckets []bucket
}

type bucket struct {
	Severity Severity
	Messages []template.HTML
}

func NewBoard() *Board {
	return &Board{}
}

// Add appends the text under the given severity, creating the
// severity bucket if needed. An empty severity defaults to Info.
// The text is used as is and must already be safe HTML.
func (b *Board) Add(text template.HTML, severity Severity) {
	if severity == "" {
		severity = Info
	}

	for i := range b.buckets {
		if b.buckets[i].Severity == severity {
			b.buckets[i].Messages = append(b.buckets[i].Messages, text)
			return
		}
	}

	b.buckets = append(b.buckets, bucket{
		Severity: severity,
		Messages: []template.HTML{text},
	})
}

func (b *Board) AddInfo(text template.HTML) {
	b.Add(text, Info)
}

// AddErrorText adds an already safe HTML text as an error message.
func (b *Board) AddErrorText(text template.HTML) {
	b.Add(text, Error)
}

// AddError adds an error message from an error value.
// For a *wperror.Error, its primary code and message are used,
// otherwise the error string is used. The text is HTML escaped.
// A nil error is ignored.
func (b *Board) AddError(err error) {
	if err == nil {
		return
	}

	text := err.Error()
	var codedErr *wperror.Error
	if errors.As(err, &codedErr) {
		text = codedErr.Error()
	}

	b.AddErrorText(template.HTML(template.HTMLEscapeString(text))) //nolint:gosec
}

// Len returns the total number of messages on the board.
func (b *Board) Len() (n int) {
	for _, bucket := range b.buckets {
		n += len(bucket.Messages)
	}
	return n
}

// Messages returns all the messages, grouped by severity in
// insertion order.
func (b *Board) Messages() (messages []Message) {
	messages = make([]Message, 0, b.Len())
	for _, bucket := range b.buckets {
		for _, text := range bucket.Messages {
			messages = append(messages, Message{
				Severity: bucket.Severity,
				Text:     text,
			})
		}
	}
	return messages
}

var noticesTemplate = template.Must(template.New("notices").Parse(
	`{{range .}}<div class="{{.Severity}}">` +
		`{{range .Messages}}<p>{{.}}</p>{{end}}` +
		`</div>{{end}}`))

// RenderAndClear writes the messages as HTML to the writer and
// empties the board. Nothing is written if the board is empty.
func (b *Board) RenderAndClear(w io.Writer) (err error) {
	if len(b.buckets) == 0 {
		return nil
	}

	buffer := bytes.NewBuffer(nil)
	err = noticesTemplate.Execute(buffer, b.buckets)
	if err != nil {
		return fmt.Errorf("executing notices template: %w", err)
	}

	b.buckets = nil

	_, err = w.Write(buffer.Bytes())
	if err != nil {
		return fmt.Errorf("writing notices: %w", err)
	}

	return nil
}
