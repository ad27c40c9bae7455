package ports

import "time"

// Stopper cancels a scheduled action. Stop reports whether the call
// prevented the action from running.
type Stopper interface {
	Stop() bool
}

// Clock schedules actions. Implementations must be safe for concurrent use.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Stopper
}
