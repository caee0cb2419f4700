package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"tastyeats/entity"
	"tastyeats/pkg/kv"
)

const cartKeyPrefix = "tastyeats-cart:"

// cartEntry is what actually persists: an item identifier and a positive
// quantity. No menu data is embedded, so the cart survives catalog edits
// and always reflects current prices.
type cartEntry struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type CartLine struct {
	Item     entity.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

type CartTotals struct {
	TotalItems  int     `json:"totalItems"`
	TotalAmount float64 `json:"totalAmount"`
}

// CartService owns the per-device carts. Entries are insertion-ordered and
// unique per item id; every mutation is written through to the kv store.
// Mutations go through SetQuantity and Clear only.
type CartService struct {
	store kv.Store

	mu    sync.Mutex
	carts map[string][]cartEntry
}

func NewCartService(store kv.Store) *CartService {
	return &CartService{store: store, carts: make(map[string][]cartEntry)}
}

// entries returns the in-memory cart, loading it from the kv store on first
// touch. A missing, unreadable or corrupt blob degrades to an empty cart;
// the session keeps going. Callers must hold s.mu.
func (s *CartService) entries(ctx context.Context, deviceID string) []cartEntry {
	if c, ok := s.carts[deviceID]; ok {
		return c
	}

	var loaded []cartEntry
	raw, err := s.store.Get(ctx, cartKeyPrefix+deviceID)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		// fresh device
	case err != nil:
		log.Printf("cart: read failed for %s, starting empty: %v", deviceID, err)
	default:
		if err := json.Unmarshal(raw, &loaded); err != nil {
			log.Printf("cart: corrupt data for %s, resetting: %v", deviceID, err)
			loaded = nil
		}
	}
	s.carts[deviceID] = loaded
	return loaded
}

// persist is best-effort: the in-memory cart stays authoritative for the
// session even when the write fails. Callers must hold s.mu.
func (s *CartService) persist(ctx context.Context, deviceID string) {
	raw, err := json.Marshal(s.carts[deviceID])
	if err != nil {
		log.Printf("cart: marshal failed for %s: %v", deviceID, err)
		return
	}
	if err := s.store.Set(ctx, cartKeyPrefix+deviceID, raw); err != nil {
		log.Printf("cart: persist failed for %s: %v", deviceID, err)
	}
}

func (s *CartService) GetQuantity(ctx context.Context, deviceID, itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries(ctx, deviceID) {
		if e.ID == itemID {
			return e.Quantity
		}
	}
	return 0
}

// SetQuantity inserts, overwrites or (for quantity <= 0) removes the entry
// for itemID. Removing an absent entry is a no-op. Existing entries keep
// their position; new ones append.
func (s *CartService) SetQuantity(ctx context.Context, deviceID, itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.entries(ctx, deviceID)

	if quantity <= 0 {
		kept := cart[:0]
		for _, e := range cart {
			if e.ID != itemID {
				kept = append(kept, e)
			}
		}
		s.carts[deviceID] = kept
		s.persist(ctx, deviceID)
		return
	}

	for i, e := range cart {
		if e.ID == itemID {
			cart[i].Quantity = quantity
			s.carts[deviceID] = cart
			s.persist(ctx, deviceID)
			return
		}
	}
	s.carts[deviceID] = append(cart, cartEntry{ID: itemID, Quantity: quantity})
	s.persist(ctx, deviceID)
}

// Clear empties the cart and persists the empty state. The checkout flow
// calls it exactly once, after a confirmed order.
func (s *CartService) Clear(ctx context.Context, deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[deviceID] = []cartEntry{}
	s.persist(ctx, deviceID)
}

// View joins the cart against a catalog snapshot. Entries whose item is not
// (yet) in the catalog are dropped from the view but stay stored, so they
// reappear once the catalog loads. Order follows entry insertion order.
func (s *CartService) View(ctx context.Context, deviceID string, catalog Snapshot) []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]CartLine, 0)
	for _, e := range s.entries(ctx, deviceID) {
		if item, ok := catalog.Lookup(e.ID); ok {
			lines = append(lines, CartLine{Item: item, Quantity: e.Quantity})
		}
	}
	return lines
}

// Totals: TotalItems counts every stored entry regardless of catalog state;
// TotalAmount prices only what the catalog can resolve, so it reads low (or
// zero) until the catalog has loaded.
func (s *CartService) Totals(ctx context.Context, deviceID string, catalog Snapshot) CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t CartTotals
	for _, e := range s.entries(ctx, deviceID) {
		t.TotalItems += e.Quantity
		if item, ok := catalog.Lookup(e.ID); ok {
			t.TotalAmount += item.Price * float64(e.Quantity)
		}
	}
	return t
}
