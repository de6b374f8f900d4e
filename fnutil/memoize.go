package fnutil

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memoize wraps fn with a per-key result cache. Concurrent first calls for
// the same key share one invocation of fn. Errors are returned to every
// waiting caller but are not cached, so a later call retries.
func Memoize[K comparable, V any](fn func(K) (V, error)) func(K) (V, error) {
	var (
		mu    sync.RWMutex
		cache = make(map[K]V)
		group singleflight.Group
	)

	lookup := func(k K) (V, bool) {
		mu.RLock()
		defer mu.RUnlock()
		v, ok := cache[k]
		return v, ok
	}

	return func(k K) (V, error) {
		if v, ok := lookup(k); ok {
			return v, nil
		}

		res, err, _ := group.Do(flightKey(k), func() (any, error) {
			if v, ok := lookup(k); ok {
				return v, nil
			}
			v, err := fn(k)
			if err != nil {
				return v, err
			}
			mu.Lock()
			cache[k] = v
			mu.Unlock()
			return v, nil
		})

		// A nil interface V comes back as a nil any.
		v, _ := res.(V)
		return v, err
	}
}

// flightKey includes the dynamic type so keys such as int(1) and int64(1)
// held in an interface-typed K do not share a flight.
func flightKey[K comparable](k K) string {
	return fmt.Sprintf("%T:%#v", k, k)
}
