package gallery

import (
	"time"

	"github.com/alexisbeaulieu97/tuikit/internal/sources"
)

// itemsLoadedMsg carries the outcome of one source load. Seq identifies the
// load so a stale result never replaces a newer one.
type itemsLoadedMsg struct {
	seq      int
	items    []sources.Item
	err      error
	duration time.Duration
}

// historySavedMsg reports a finished history write.
type historySavedMsg struct {
	err error
}
