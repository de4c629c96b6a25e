package cache

import "time"

// Observer receives cache events. Implementations must be safe for
// concurrent use and must not block.
type Observer interface {
	// Hit is called when a fresh value is served without population.
	Hit(cache string)
	// Miss is called when a read finds a missing or stale value.
	Miss(cache string)
	// Populated is called when a population completes; err is nil on success.
	Populated(cache string, took time.Duration, err error)
	// ServedStale is called when a failed population falls back to the
	// previous value.
	ServedStale(cache string)
}

type nopObserver struct{}

func (nopObserver) Hit(string)                             {}
func (nopObserver) Miss(string)                            {}
func (nopObserver) Populated(string, time.Duration, error) {}
func (nopObserver) ServedStale(string)                     {}

// NopObserver returns an Observer that discards every event.
func NopObserver() Observer { return nopObserver{} }
