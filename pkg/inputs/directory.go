package inputs

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gareboard/gareboard/pkg/railnet"
)

// CachedDirectory keeps the station directory around between requests. The
// directory is reference data and read-mostly: a refresh rebuilds it
// wholesale and swaps the pointer atomically, never mutating in place.
type CachedDirectory struct {
	provider Provider
	ttl      time.Duration

	current atomic.Pointer[directorySnapshot]
}

type directorySnapshot struct {
	directory *railnet.Directory
	fetchedAt time.Time
}

func NewCachedDirectory(provider Provider, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		provider: provider,
		ttl:      ttl,
	}
}

// Get returns the cached directory, refreshing it when stale. A failed
// refresh falls back to the previous snapshot rather than losing the board.
func (c *CachedDirectory) Get(ctx context.Context) (*railnet.Directory, error) {
	snapshot := c.current.Load()
	if snapshot != nil && time.Since(snapshot.fetchedAt) < c.ttl {
		return snapshot.directory, nil
	}

	stations, err := c.provider.Stations(ctx)
	if err != nil {
		if snapshot != nil {
			return snapshot.directory, nil
		}
		return nil, err
	}

	fresh := &directorySnapshot{
		directory: railnet.NewDirectory(stations),
		fetchedAt: time.Now(),
	}
	c.current.Store(fresh)

	return fresh.directory, nil
}
