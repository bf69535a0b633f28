package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Fixed storage keys. The email key is persisted separately from the cart
// so it survives a cart clear and can be offered as a default next visit.
const (
	cartKey  = "christmasfun:cart"
	emailKey = "christmasfun:customer-email"
)

// Store is the shopper's cart for the current session: an ordered sequence
// of items with unique ids, mirrored to a KV on every mutation. All methods
// are meant to be called from a single goroutine.
type Store struct {
	kv    KV
	items []Item
}

// Open loads the persisted snapshot (if any) and returns a ready store.
func Open(ctx context.Context, kv KV) (*Store, error) {
	s := &Store{kv: kv}
	data, err := kv.Get(ctx, cartKey)
	if errors.Is(err, ErrKeyNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return s, nil
}

// AddItem appends the item to the cart. Adding an id that is already
// present is a no-op, so double-clicks never create duplicates.
func (s *Store) AddItem(ctx context.Context, item Item) error {
	if s.Contains(item.ID) {
		return nil
	}
	s.items = append(s.items, item)
	return s.persist(ctx)
}

// RemoveItem drops the item with the given id; absent ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.items = nil
	return s.persist(ctx)
}

// Total is the exact sum of unit prices; 0.00 for an empty cart.
func (s *Store) Total() Cents {
	var total Cents
	for _, item := range s.items {
		total += item.UnitPrice
	}
	return total
}

// Count is the number of entries (each entry is one unit).
func (s *Store) Count() int { return len(s.items) }

// Contains reports whether an item with the given id is in the cart.
func (s *Store) Contains(id string) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns the cart contents in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// SetCustomerEmail remembers the email as a convenience default for the
// next session. It is stored under its own key, independent of the cart.
func (s *Store) SetCustomerEmail(ctx context.Context, email string) error {
	return s.kv.Set(ctx, emailKey, []byte(email))
}

// CustomerEmail returns the remembered email, or "" if none was saved.
func (s *Store) CustomerEmail(ctx context.Context) string {
	data, err := s.kv.Get(ctx, emailKey)
	if err != nil {
		return ""
	}
	return string(data)
}

// persist writes the full snapshot; every mutation rewrites the whole cart.
func (s *Store) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	if err := s.kv.Set(ctx, cartKey, data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
