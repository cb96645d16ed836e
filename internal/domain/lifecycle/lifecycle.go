// Package lifecycle holds shared timeouts for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or stop
// before the fx lifecycle gives up on it.
const DefaultTimeout = 30 * time.Second
