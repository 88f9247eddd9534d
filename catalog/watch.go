package catalog

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback cadence used when fsnotify is unavailable.
const pollInterval = time.Second

// Reload reports the outcome of one reload attempt triggered by Watch.
type Reload struct {
	Path string
	Err  error // nil when the reload succeeded
}

// Watch reloads the catalog from path whenever the file changes, until ctx
// is done. Each attempt's outcome is sent on the returned channel, which is
// closed when the watch stops. A failed reload leaves the catalog on its
// previous contents, so a bad edit never takes templates away.
//
// Watch does not perform the initial load; call LoadFile first. It uses
// fsnotify for change detection and falls back to polling the file's
// modification time when a watcher cannot be set up.
func (c *Catalog[T]) Watch(ctx context.Context, path string) <-chan Reload {
	ch := make(chan Reload, 4)

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			c.watchPolling(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory: editors and atomic writers replace the
		// file rather than write it in place.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			c.watchPolling(ctx, ch, path)
			return
		}

		c.watchEvents(ctx, ch, watcher, path)
	}()

	return ch
}

// watchEvents reacts to fsnotify events for the catalog file.
func (c *Catalog[T]) watchEvents(ctx context.Context, ch chan<- Reload, watcher *fsnotify.Watcher, path string) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			c.reload(ch, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable; keep watching.
			_ = err
		}
	}
}

// watchPolling checks the file's modification time on a ticker.
func (c *Catalog[T]) watchPolling(ctx context.Context, ch chan<- Reload, path string) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(lastMod) {
				lastMod = mod
				c.reload(ch, path)
			}
		}
	}
}

// reload runs LoadFile and reports the outcome without blocking: when
// nobody is draining the channel, outcomes are dropped.
func (c *Catalog[T]) reload(ch chan<- Reload, path string) {
	r := Reload{Path: path, Err: c.LoadFile(path)}
	select {
	case ch <- r:
	default:
	}
}
