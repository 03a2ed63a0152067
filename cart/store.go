// Package cart implements the ordered shopping cart with its durable
// storage mirror.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/woodendoors/doorshowcase/models"
	"github.com/woodendoors/doorshowcase/storage"
)

// StorageKey is the fixed key the whole cart is serialized under.
const StorageKey = "woodenDoorsCart"

// ErrOutOfRange signals a stale index. Indices are stable only between
// mutations; callers must pass freshly computed ones.
var ErrOutOfRange = errors.New("cart: index out of range")

type Store struct {
	mu    sync.Mutex
	items []models.ProductCustomization
	kv    storage.KV
}

// NewStore rehydrates the cart from the durable mirror. Malformed or
// missing content starts an empty cart; rehydration is never fatal.
func NewStore(kv storage.KV) *Store {
	s := &Store{kv: kv}

	raw, err := kv.Get(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("cart: load saved cart: %v", err)
		}
		return s
	}
	var items []models.ProductCustomization
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("cart: saved cart is malformed, starting empty: %v", err)
		return s
	}
	s.items = items
	return s
}

// Add appends a line. No dedup: identical customizations coexist.
func (s *Store) Add(rec models.ProductCustomization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, rec)
	s.persist()
}

func (s *Store) ReplaceAt(index int, rec models.ProductCustomization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return ErrOutOfRange
	}
	s.items[index] = rec
	s.persist()
	return nil
}

func (s *Store) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return ErrOutOfRange
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.persist()
	return nil
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.kv.Delete(context.Background(), StorageKey); err != nil {
		log.Printf("cart: clear durable mirror: %v", err)
	}
}

// Snapshot returns a copy of the lines in insertion order and the sum of
// their totals.
func (s *Store) Snapshot() ([]models.ProductCustomization, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.ProductCustomization, len(s.items))
	copy(items, s.items)

	var total float64
	for _, it := range items {
		total += it.TotalPrice
	}
	return items, total
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// persist mirrors the full cart synchronously. Write failures are logged
// and not surfaced to the caller. Callers hold s.mu.
func (s *Store) persist() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("cart: marshal cart: %v", err)
		return
	}
	if err := s.kv.Set(context.Background(), StorageKey, raw); err != nil {
		log.Printf("cart: persist cart: %v", err)
	}
}
