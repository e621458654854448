package watcher

import "context"

// Watcher monitors the drop directory for new transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly dropped transcript file.
type EventHandler func(ctx context.Context, path string) error
