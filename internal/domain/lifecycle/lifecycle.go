// Package lifecycle holds process-wide start and stop limits.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start and stop hook.
const DefaultTimeout = 10 * time.Second
