// Package cache provides a process-local, time-boxed memoization cache with
// request coalescing.
//
// A [Cache] holds at most one value per key together with the time it was
// computed. A read of a fresh value returns immediately. A read of a missing
// or stale value triggers a single population for that key; every caller that
// arrives while the population is running waits for it and receives the same
// result.
//
// Population failures never evict. Callers get the previous value when one
// exists, otherwise the configured default together with an error wrapping
// [ErrNoValue]:
//
//	players := cache.New(cache.Options[[]models.CachedPlayer]{
//	    Name:    "player_list",
//	    TTL:     10 * time.Minute,
//	    Default: func() []models.CachedPlayer { return []models.CachedPlayer{} },
//	})
//
//	list, err := players.Get(ctx, "all", func(ctx context.Context, _ string) ([]models.CachedPlayer, error) {
//	    return fetchAllRosters(ctx)
//	})
//
// Freshness is checked lazily on access. There is no eviction timer and no
// persistence; entries live until [Cache.Invalidate], [Cache.Reset] or process
// exit.
package cache
