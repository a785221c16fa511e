// Package lifecycle holds timeouts shared by start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single start or stop hook.
	DefaultTimeout = 10 * time.Second

	// StartupSyncTimeout bounds session restore and cart initialization at boot.
	StartupSyncTimeout = 30 * time.Second
)
