package ports

import "time"

// Clock abstracts "now" so use cases can be tested against fixed
// times. Production wiring injects the system clock.
type Clock interface {
	Now() time.Time
}
