package services

import (
	"encoding/json"
	"errors"

	"backend/entity"
	"backend/pkg/events"
	"backend/pkg/metrics"
	"backend/repository"

	"go.uber.org/zap"
)

var ErrItemNotInCart = errors.New("item not in cart")

// storageKeyPrefix matches the layout the previous frontend left behind in
// localStorage, so migrated carts keep their keys.
const storageKeyPrefix = "cart_"

// CartService owns the per-identity cart: a JSON array of denormalized menu
// snapshots, rewritten in full on every mutation. Each mutation publishes
// exactly one cartUpdated event; consumers must not assume batching.
type CartService struct {
	Repo *repository.CartRepository
	Bus  *events.Bus
	Log  *zap.Logger
}

func NewCartService(repo *repository.CartRepository, bus *events.Bus, log *zap.Logger) *CartService {
	return &CartService{Repo: repo, Bus: bus, Log: log}
}

// Load reads the cart for a resolved key. A corrupt persisted payload is
// logged and treated as an empty cart, never as a hard failure.
func (s *CartService) Load(key string) ([]entity.CartEntry, error) {
	if key == "" {
		return nil, ErrIdentityRequired
	}

	raw, err := s.Repo.Get(storageKeyPrefix + key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []entity.CartEntry{}, nil
	}

	var entries []entity.CartEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.Log.Warn("corrupt cart payload, treating as empty",
			zap.String("key", key), zap.Error(err))
		return []entity.CartEntry{}, nil
	}
	return entries, nil
}

// Add merges qty into an existing line for the same item, or appends a new
// line with a snapshot of the menu item taken now.
func (s *CartService) Add(key string, item *entity.MenuItem, qty int) error {
	if key == "" {
		return ErrIdentityRequired
	}
	if qty <= 0 {
		qty = 1
	}

	entries, err := s.Load(key)
	if err != nil {
		return err
	}

	merged := false
	for i := range entries {
		if entries[i].ItemID == item.ID {
			entries[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		entries = append(entries, entity.CartEntry{
			ItemID:      item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    qty,
			Image:       item.Image,
			Description: item.Description,
			Restaurant:  item.RestaurantID,
		})
	}

	return s.persist(key, entries, "add")
}

// SetQuantity overwrites a line's quantity; zero or less deletes the line.
func (s *CartService) SetQuantity(key, itemID string, qty int) error {
	if key == "" {
		return ErrIdentityRequired
	}

	entries, err := s.Load(key)
	if err != nil {
		return err
	}

	if qty <= 0 {
		return s.removeEntry(key, entries, itemID)
	}

	for i := range entries {
		if entries[i].ItemID == itemID {
			entries[i].Quantity = qty
			return s.persist(key, entries, "setQuantity")
		}
	}
	return ErrItemNotInCart
}

// Remove deletes the line unconditionally; removing an absent item still
// counts as a mutation.
func (s *CartService) Remove(key, itemID string) error {
	if key == "" {
		return ErrIdentityRequired
	}

	entries, err := s.Load(key)
	if err != nil {
		return err
	}
	return s.removeEntry(key, entries, itemID)
}

func (s *CartService) removeEntry(key string, entries []entity.CartEntry, itemID string) error {
	kept := entries[:0]
	for _, e := range entries {
		if e.ItemID != itemID {
			kept = append(kept, e)
		}
	}
	return s.persist(key, kept, "remove")
}

// Clear drops every entry for the key.
func (s *CartService) Clear(key string) error {
	if key == "" {
		return ErrIdentityRequired
	}
	if err := s.Repo.Delete(storageKeyPrefix + key); err != nil {
		return err
	}
	metrics.CartMutations.WithLabelValues("clear").Inc()
	s.Bus.Publish(events.CartUpdated)
	return nil
}

// Subtotal sums price*quantity over the entries.
func Subtotal(entries []entity.CartEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Price * int64(e.Quantity)
	}
	return total
}

func (s *CartService) persist(key string, entries []entity.CartEntry, op string) error {
	if entries == nil {
		entries = []entity.CartEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := s.Repo.Put(storageKeyPrefix+key, string(raw)); err != nil {
		return err
	}
	metrics.CartMutations.WithLabelValues(op).Inc()
	s.Bus.Publish(events.CartUpdated)
	return nil
}
