package adapter

import "time"

// Clock supplies the current time. Urgency scoring depends on "today",
// so time is injected rather than read ambiently.
type Clock interface {
	Now() time.Time
}
