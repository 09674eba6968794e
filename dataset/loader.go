package dataset

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/carprice/dashboard/cache"
)

// Loader memoizes one Source for the life of the process. Failed reads are
// not memoized, so the next interaction tries storage again.
type Loader struct {
	source Source
	memo   *cache.Cache[Table]
	group  singleflight.Group
}

// NewLoader creates a Loader for source.
func NewLoader(source Source) (*Loader, error) {
	memo, err := cache.New(func(Table) int64 { return 1 }, "Dataset Cache")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dataset cache: %w", err)
	}
	return &Loader{source: source, memo: memo}, nil
}

// Key identifies the loader's source.
func (l *Loader) Key() string {
	return l.source.Key()
}

// Load returns the dataset, reading storage only on the first call.
// Concurrent first calls share a single read.
func (l *Loader) Load(ctx context.Context) (Table, error) {
	key := l.source.Key()
	if t, ok := l.memo.Get(key); ok {
		return t, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		if t, ok := l.memo.Get(key); ok {
			return t, nil
		}

		start := time.Now()
		t, err := l.source.Read(ctx)
		if err != nil {
			log.Printf("[dataset] Failed to load %s: %v", key, err)
			return nil, err
		}

		l.memo.Set(key, t, 1)
		l.memo.Wait()
		log.Printf("[dataset] Loaded %d rows from %s in %v", t.Len(), key, time.Since(start))
		return t, nil
	})
	if err != nil {
		return Table{}, err
	}
	return v.(Table), nil
}

// Invalidate drops the memoized table; the next Load reads storage again.
func (l *Loader) Invalidate() {
	l.memo.Delete(l.source.Key())
	log.Printf("[dataset] Cache cleared for %s", l.source.Key())
}

// Stats returns the memo cache statistics.
func (l *Loader) Stats() cache.Stats {
	return l.memo.Stats()
}
