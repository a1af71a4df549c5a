package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/qdm12/debug-cron/internal/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	errors []string
}

func (l *testLogger) Info(string) {}
func (l *testLogger) Warn(string) {}
func (l *testLogger) Error(s string) {
	l.errors = append(l.errors, s)
}

func Test_handlers_index(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		rootURL    string
		path       string
		register   Registerer
		statusCode int
		contains   []string
		errors     []string
	}{
		"notices rendered": {
			rootURL: "/",
			path:    "/",
			register: func(dispatcher *hooks.Dispatcher) {
				dispatcher.Add(hooks.PluginsLoaded, hooks.PriorityLast,
					func(context.Context, io.Writer) error {
						dispatcher.Add(hooks.AdminNotices, hooks.PriorityDefault,
							func(_ context.Context, w io.Writer) error {
								_, err := io.WriteString(w, `<div class="info"><p>hello</p></div>`)
								return err
							})
						return nil
					})
			},
			statusCode: http.StatusOK,
			contains: []string{
				`<div id="notices"><div class="info"><p>hello</p></div></div>`,
				`Checked <a href="https://example.com">https://example.com</a> at 10:20:30`,
			},
		},
		"custom root URL": {
			rootURL:    "/admin/",
			path:       "/admin/",
			register:   func(*hooks.Dispatcher) {},
			statusCode: http.StatusOK,
			contains:   []string{`<div id="notices"></div>`},
		},
		"custom root URL without trailing slash": {
			rootURL:    "/admin",
			path:       "/admin",
			register:   func(*hooks.Dispatcher) {},
			statusCode: http.StatusOK,
			contains:   []string{`<div id="notices"></div>`},
		},
		"custom root URL requested without trailing slash": {
			rootURL:    "/admin/",
			path:       "/admin",
			register:   func(*hooks.Dispatcher) {},
			statusCode: http.StatusOK,
			contains:   []string{`<div id="notices"></div>`},
		},
		"custom root URL requested with trailing slash": {
			rootURL:    "/admin",
			path:       "/admin/",
			register:   func(*hooks.Dispatcher) {},
			statusCode: http.StatusOK,
			contains:   []string{`<div id="notices"></div>`},
		},
		"outside custom root URL": {
			rootURL:    "/admin",
			path:       "/",
			register:   func(*hooks.Dispatcher) {},
			statusCode: http.StatusNotFound,
		},
		"plugin error logged": {
			rootURL: "/",
			path:    "/",
			register: func(dispatcher *hooks.Dispatcher) {
				dispatcher.Add(hooks.PluginsLoaded, hooks.PriorityDefault,
					func(context.Context, io.Writer) error {
						return errors.New("test error")
					})
			},
			statusCode: http.StatusOK,
			contains:   []string{`<div id="notices"></div>`},
			errors:     []string{"plugins_loaded callback 1 of 1: test error"},
		},
		"not found": {
			rootURL:    "/",
			path:       "/other",
			register:   func(*hooks.Dispatcher) {},
			statusCode: http.StatusNotFound,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			logger := &testLogger{}
			timeNow := func() time.Time {
				return time.Date(2024, time.May, 4, 10, 20, 30, 0, time.UTC)
			}
			handler := newHandler(testCase.rootURL, "https://example.com",
				testCase.register, logger, timeNow)

			request := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			response := recorder.Result()
			defer response.Body.Close()
			body, err := io.ReadAll(response.Body)
			require.NoError(t, err)

			assert.Equal(t, testCase.statusCode, response.StatusCode)
			for _, s := range testCase.contains {
				assert.Contains(t, string(body), s)
			}
			assert.Equal(t, testCase.errors, logger.errors)
		})
	}
}
