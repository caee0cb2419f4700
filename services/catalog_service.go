package services

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"tastyeats/entity"
)

// Snapshot is an immutable view of the catalog at one point in time. Carts
// join against a snapshot, so one request sees one consistent catalog.
type Snapshot struct {
	items []entity.MenuItem
	index map[string]entity.MenuItem
}

func (s Snapshot) Items() []entity.MenuItem { return s.items }

func (s Snapshot) Lookup(itemID string) (entity.MenuItem, bool) {
	item, ok := s.index[itemID]
	return item, ok
}

// CatalogService caches the menu catalog. Refreshes are fenced with a
// monotonic sequence number so a slow fetch resolving late can never
// overwrite a newer result: last request wins.
type CatalogService struct {
	source CatalogSource

	seq uint64 // latest issued refresh, atomic

	mu      sync.RWMutex
	applied uint64
	current Snapshot
}

func NewCatalogService(source CatalogSource) *CatalogService {
	return &CatalogService{
		source:  source,
		current: Snapshot{index: map[string]entity.MenuItem{}},
	}
}

// Snapshot never blocks on a refresh; while the first fetch is in flight
// (or failing) it returns the empty catalog.
func (s *CatalogService) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *CatalogService) Refresh() error {
	seq := atomic.AddUint64(&s.seq, 1)

	items, err := s.source.FetchAll()
	if err != nil {
		// Fetch failure is not fatal: keep serving the previous snapshot.
		log.Printf("catalog: refresh failed: %v", err)
		return err
	}

	if seq != atomic.LoadUint64(&s.seq) {
		// A newer refresh was issued while this one ran; drop the result.
		return nil
	}

	index := make(map[string]entity.MenuItem, len(items))
	for _, item := range items {
		index[item.ItemID] = item
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return nil
	}
	s.applied = seq
	s.current = Snapshot{items: items, index: index}
	return nil
}

// RefreshLoop re-fetches the catalog on a timer for the life of the
// process, like the hub loops do.
func (s *CatalogService) RefreshLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		s.Refresh()
	}
}
