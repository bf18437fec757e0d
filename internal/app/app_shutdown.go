package app

import "github.com/andyrewlee/carousel/internal/logging"

// Shutdown stops the file watcher. Call it once the program has exited.
func (a *App) Shutdown() {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Close(); err != nil {
		logging.Warn("closing deck watcher: %v", err)
	}
	a.watcher = nil
}
