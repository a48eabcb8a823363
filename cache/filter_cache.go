package filter_cache

import (
	"sync"
	"time"

	"github.com/pgera1/Khemixall-medical-products/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// Stores the storefront sidebar payload (brands, availability counts, price
// range). Recomputed from the catalog on miss; invalidated on any admin
// product mutation.

type metaEntry struct {
	meta      models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metaEntry
)

func GetMetadata() (models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.meta, true
	}
	return models.FilterMetadata{}, false
}

func SetMetadata(meta models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metaEntry{meta: meta, fetchedAt: time.Now()}
}

// Invalidate drops the cached metadata. Call on product create/update/delete.
func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
