package server

import "github.com/qdm12/debug-cron/internal/hooks"

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}

// Registerer registers the plugins callbacks on a dispatcher
// created for a single admin page request.
type Registerer func(dispatcher *hooks.Dispatcher)
