package cache

import "log"

// Broadcaster clears every cache after a successful admin mutation. The data
// model carries enough cross-references (denormalized category slugs,
// category-scoped product lists, the full-catalog listing) that tracking
// per-entity dependencies would need a write-through invalidation graph;
// with admin-only write volume, clearing everything is the safe trade.
type Broadcaster struct {
	caches []*Cache
}

func NewBroadcaster(caches ...*Cache) *Broadcaster {
	return &Broadcaster{caches: caches}
}

// InvalidateAll never fails the write that triggered it: the write already
// succeeded in the catalog store, and the worst case of a skipped clear is
// stale reads until natural TTL expiry.
func (b *Broadcaster) InvalidateAll() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[cache] invalidation failed, serving stale until TTL expiry: %v", r)
		}
	}()

	for _, c := range b.caches {
		c.InvalidateAll()
	}
	log.Printf("[cache] all entries invalidated")
}
