// Package cartstore keeps one cart per browsing session in memory.
// A session's cart is owned exclusively by that session; the store is
// the single serialization point for concurrent mutations of it.
package cartstore

import (
	"sync"

	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
)

var _ port.CartStorage = (*Store)(nil)

type Store struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func New() *Store {
	return &Store{carts: make(map[string]domain.Cart)}
}

func (s *Store) View(sessionID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[sessionID]
}

// Update applies fn to the session's cart as one atomic
// read-modify-write and returns the new cart.
func (s *Store) Update(sessionID string, fn func(domain.Cart) domain.Cart) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := fn(s.carts[sessionID])
	if cart.Empty() {
		delete(s.carts, sessionID)
		return cart
	}
	s.carts[sessionID] = cart
	return cart
}
