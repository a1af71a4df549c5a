package hooks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeCallback(s string) Callback {
	return func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func Test_Dispatcher_Fire(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		register   func(d *Dispatcher)
		event      Event
		output     string
		errWrapped error
		errMessage string
	}{
		"no callback": {
			register: func(d *Dispatcher) {},
			event:    PluginsLoaded,
		},
		"priority order": {
			register: func(d *Dispatcher) {
				d.Add(PluginsLoaded, PriorityLast, writeCallback("last"))
				d.Add(PluginsLoaded, PriorityDefault, writeCallback("default,"))
				d.Add(PluginsLoaded, 1, writeCallback("first,"))
			},
			event:  PluginsLoaded,
			output: "first,default,last",
		},
		"ties in registration order": {
			register: func(d *Dispatcher) {
				d.Add(AdminNotices, PriorityDefault, writeCallback("a"))
				d.Add(AdminNotices, PriorityDefault, writeCallback("b"))
				d.Add(AdminNotices, PriorityDefault, writeCallback("c"))
			},
			event:  AdminNotices,
			output: "abc",
		},
		"other event ignored": {
			register: func(d *Dispatcher) {
				d.Add(AdminNotices, PriorityDefault, writeCallback("notices"))
				d.Add(PluginsLoaded, PriorityDefault, writeCallback("loaded"))
			},
			event:  PluginsLoaded,
			output: "loaded",
		},
		"error does not stop other callbacks": {
			register: func(d *Dispatcher) {
				d.Add(PluginsLoaded, PriorityDefault, func(context.Context, io.Writer) error {
					return errTest
				})
				d.Add(PluginsLoaded, PriorityLast, writeCallback("after"))
			},
			event:      PluginsLoaded,
			output:     "after",
			errWrapped: errTest,
			errMessage: "plugins_loaded callback 1 of 2: test error",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dispatcher := New()
			testCase.register(dispatcher)
			buffer := bytes.NewBuffer(nil)

			err := dispatcher.Fire(context.Background(), testCase.event, buffer)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.output, buffer.String())
		})
	}
}

func Test_Dispatcher_Fire_addDuringFire(t *testing.T) {
	t.Parallel()

	dispatcher := New()
	dispatcher.Add(PluginsLoaded, PriorityDefault, func(_ context.Context, w io.Writer) error {
		dispatcher.Add(PluginsLoaded, PriorityLast, writeCallback("late"))
		dispatcher.Add(AdminNotices, PriorityDefault, writeCallback("notice"))
		_, err := io.WriteString(w, "early")
		return err
	})

	buffer := bytes.NewBuffer(nil)
	err := dispatcher.Fire(context.Background(), PluginsLoaded, buffer)
	assert.NoError(t, err)
	assert.Equal(t, "early", buffer.String())
	assert.True(t, dispatcher.Has(AdminNotices))

	buffer.Reset()
	err = dispatcher.Fire(context.Background(), AdminNotices, buffer)
	assert.NoError(t, err)
	assert.Equal(t, "notice", buffer.String())
}
