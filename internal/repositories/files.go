package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"fire-risk-api/pkg/logger"
)

// artifactCache keeps successfully loaded artifacts for a fixed TTL. A zero
// TTL disables caching.
type artifactCache struct {
	c *gocache.Cache
}

func newArtifactCache(ttl time.Duration) *artifactCache {
	if ttl <= 0 {
		return &artifactCache{}
	}
	return &artifactCache{c: gocache.New(ttl, 2*ttl)}
}

// load returns the cached value for key or calls fn and caches its result
// when fn succeeds. Failures are never cached so a fixed file is picked up on
// the next call.
func (a *artifactCache) load(key string, fn func() (any, error)) (any, error) {
	if a != nil && a.c != nil {
		if v, ok := a.c.Get(key); ok {
			return v, nil
		}
	}

	v, err := fn()
	if err != nil {
		return nil, err
	}

	if a != nil && a.c != nil {
		a.c.SetDefault(key, v)
	}
	return v, nil
}

// readFirstJSON decodes the first candidate that exists and parses, trying
// paths in order. It returns the decoded value and the path that was used.
func readFirstJSON[T any](paths []string, l *logger.Logger) (T, string, error) {
	var zero T
	sawMalformed := false

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				sawMalformed = true
				l.Warning("cannot read artifact", map[string]any{"path": path, "err": err.Error()})
			}
			continue
		}

		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			sawMalformed = true
			l.Warning("cannot parse artifact", map[string]any{"path": path, "err": err.Error()})
			continue
		}

		return v, path, nil
	}

	if sawMalformed {
		return zero, "", fmt.Errorf("%w: tried %v", ErrArtifactMalformed, paths)
	}
	return zero, "", fmt.Errorf("%w: tried %v", ErrArtifactNotFound, paths)
}
