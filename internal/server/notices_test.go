package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/qdm12/debug-cron/internal/hooks"
	"github.com/stretchr/testify/assert"
)

func Test_RenderNotices(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")
	register := func(dispatcher *hooks.Dispatcher) {
		dispatcher.Add(hooks.PluginsLoaded, hooks.PriorityDefault,
			func(_ context.Context, w io.Writer) error {
				_, _ = io.WriteString(w, "discarded")
				return errTest
			})
		dispatcher.Add(hooks.AdminNotices, hooks.PriorityDefault,
			func(_ context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "notice")
				return err
			})
	}

	buffer := bytes.NewBuffer(nil)
	err := RenderNotices(context.Background(), register, buffer)

	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, "notice", buffer.String())
}

func Test_RenderNotices_noNoticesRegistered(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")
	register := func(dispatcher *hooks.Dispatcher) {
		dispatcher.Add(hooks.PluginsLoaded, hooks.PriorityLast,
			func(context.Context, io.Writer) error {
				return errTest
			})
	}

	buffer := bytes.NewBuffer(nil)
	err := RenderNotices(context.Background(), register, buffer)

	assert.ErrorIs(t, err, errTest)
	assert.EqualError(t, err, "plugins_loaded callback 1 of 1: test error")
	assert.Empty(t, buffer.String())
}
