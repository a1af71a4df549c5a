package server

import (
	"context"
	"errors"
	"io"

	"github.com/qdm12/debug-cron/internal/hooks"
)

// RenderNotices runs the admin page lifecycle on a new dispatcher
// and writes the admin notices to w. Errors are returned once both
// events are fired so a failing plugin does not hide the notices.
func RenderNotices(ctx context.Context, register Registerer, w io.Writer) error {
	dispatcher := hooks.New()
	register(dispatcher)

	pluginsErr := dispatcher.Fire(ctx, hooks.PluginsLoaded, io.Discard)
	if !dispatcher.Has(hooks.AdminNotices) {
		return pluginsErr
	}
	noticesErr := dispatcher.Fire(ctx, hooks.AdminNotices, w)
	return errors.Join(pluginsErr, noticesErr)
}
