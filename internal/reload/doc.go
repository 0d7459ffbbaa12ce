// Package reload watches theme and stylesheet files and pushes reload
// messages to browsers connected to the component gallery.
//
// # Watcher
//
// Watcher wraps fsnotify. Each path may be a file or a directory; files are
// watched through their parent directory so editors that save by rename
// are still seen. Events are debounced and delivered as one batch.
//
//	w := reload.NewWatcher(reload.WatcherConfig{Paths: []string{"theme.yaml"}})
//	w.OnChange(func(changes []reload.Change) { ... })
//	if err := w.Start(ctx); err != nil {
//	    return err
//	}
//
// # Protocol
//
// Browsers connect to /_donut/reload via WebSocket. Messages are JSON:
//
//	{"type": "reload"}                // full page reload
//	{"type": "css", "file": "..."}    // stylesheet-only reload
//	{"type": "error", "error": "..."} // show error overlay
//	{"type": "clear"}                 // clear error overlay
package reload
