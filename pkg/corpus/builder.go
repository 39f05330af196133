package corpus

import (
	"context"
	"fmt"
	"time"
)

// DefaultTTL matches the original five-minute cache window for corpus entries.
const DefaultTTL = 5 * time.Minute

// Builder orchestrates corpus construction: cache check, source invocation on
// miss, cache write, and build-frequency logging. Cache and log handles are
// injected; the builder never reaches into process-wide state.
//
// Within one build the ordering is: existence check, then source call, then
// cache write, then frequency increment. Concurrent misses for the same key
// are not deduplicated; the last cache write wins and the log may count both.
type Builder struct {
	cache   Cache
	log     BuildLog
	ttl     time.Duration
	sources map[Kind]Source
}

func NewBuilder(cache Cache, log BuildLog, ttl time.Duration, sources ...Source) *Builder {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	byKind := make(map[Kind]Source, len(sources))
	for _, src := range sources {
		byKind[src.Kind()] = src
	}
	return &Builder{cache: cache, log: log, ttl: ttl, sources: byKind}
}

// Build returns the corpus text for a subject of the given kind, serving from
// cache when fresh. Cache hits never touch the frequency log. Source failures
// propagate unchanged and are neither cached nor logged. Cache-store failures
// surface as ErrCacheUnavailable, never as a content error.
func (b *Builder) Build(ctx context.Context, subject string, kind Kind) (string, error) {
	key := NormalizeSubject(subject)

	exists, err := b.cache.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	if exists {
		text, found, err := b.cache.Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
		}
		if found {
			return text, nil
		}
		// Expired between the existence check and the read; rebuild.
	}

	source, ok := b.sources[kind]
	if !ok {
		return "", fmt.Errorf("no source registered for kind %q", kind)
	}

	text, err := source.BuildCorpus(ctx, key)
	if err != nil {
		return "", err
	}

	if err := b.cache.Set(ctx, key, text, b.ttl); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	if err := b.log.Incr(ctx, kind.LogName(), key); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return text, nil
}
