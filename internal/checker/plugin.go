package checker

import (
	"context"
	"io"

	"github.com/qdm12/debug-cron/internal/hooks"
	"github.com/qdm12/debug-cron/internal/notice"
)

// Register hooks the checker to the dispatcher: once all plugins
// are loaded, the checks run and their notices are rendered
// once when the admin notices event fires.
func Register(dispatcher *hooks.Dispatcher, settings Settings) {
	dispatcher.Add(hooks.PluginsLoaded, hooks.PriorityLast,
		func(ctx context.Context, _ io.Writer) error {
			board := notice.NewBoard()
			checker := New(board, settings)
			checker.Run(ctx)

			dispatcher.Add(hooks.AdminNotices, hooks.PriorityDefault,
				func(_ context.Context, w io.Writer) error {
					return board.RenderAndClear(w)
				})
			return nil
		})
}
