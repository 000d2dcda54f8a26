// Package profiles resolves recipient profiles by username against the user
// query collaborator, with a shared TTL cache in front so page prefetch and
// the following send hit the same entry.
package profiles

import (
	"context"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"anonbox/models"
)

// Source is the user query collaborator. An unknown username is (zero,
// false, nil), never an error.
type Source interface {
	FetchProfile(ctx context.Context, username string) (models.Profile, bool, error)
}

type entry struct {
	profile models.Profile
	found   bool
}

// Loader caches lookups keyed by username. Absent profiles are cached too:
// "no such user" is valid data, and hammering the collaborator for a dead
// link would be worse than a stale 404.
type Loader struct {
	source Source
	cache  *cache.Cache
	group  singleflight.Group
}

func NewLoader(source Source, ttl time.Duration) *Loader {
	return &Loader{
		source: source,
		cache:  cache.New(ttl, 2*ttl),
	}
}

func (l *Loader) Load(ctx context.Context, username string) (models.Profile, bool, error) {
	// Accounts are stored lowercase; a shared link typed as /to/Alice must
	// resolve (and cache) the same entry as /to/alice.
	username = strings.ToLower(username)
	key := "user/" + username

	if v, ok := l.cache.Get(key); ok {
		e := v.(entry)
		return e.profile, e.found, nil
	}

	// Concurrent misses for the same username collapse into one fetch. The
	// fetch is detached from the first caller's context: its cancellation
	// must not fail every waiter sharing the flight. The source's own
	// timeout still bounds the request.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		profile, found, err := l.source.FetchProfile(fetchCtx, username)
		if err != nil {
			return nil, err
		}
		e := entry{profile: profile, found: found}
		l.cache.Set(key, e, cache.DefaultExpiration)
		return e, nil
	})
	if err != nil {
		return models.Profile{}, false, err
	}

	e := v.(entry)
	return e.profile, e.found, nil
}

// Invalidate drops the cached entry for a username. Called after signup so a
// fresh account's link works without waiting out the TTL.
func (l *Loader) Invalidate(username string) {
	l.cache.Delete("user/" + strings.ToLower(username))
}
