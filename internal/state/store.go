// Package state holds the client side copy of the last fetched lists.
package state

import (
	"sync"

	"github.com/spigell/smart-recruit/internal/api"
)

// Store is the view-state cache. Lists are only ever replaced wholesale by
// the loaders; readers get copies.
type Store struct {
	mu         sync.RWMutex
	candidates []api.Candidate
	offers     []api.Offer
}

func New() *Store {
	return &Store{}
}

func (s *Store) SetCandidates(candidates []api.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = append([]api.Candidate(nil), candidates...)
}

func (s *Store) Candidates() []api.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]api.Candidate(nil), s.candidates...)
}

func (s *Store) HasCandidates() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates) > 0
}

func (s *Store) InvalidateCandidates() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = nil
}

func (s *Store) SetOffers(offers []api.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = cloneOffers(offers)
}

func (s *Store) Offers() []api.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOffers(s.offers)
}

func (s *Store) HasOffers() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.offers) > 0
}

func (s *Store) InvalidateOffers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = nil
}

// Invalidate drops both lists.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = nil
	s.offers = nil
}

func cloneOffers(offers []api.Offer) []api.Offer {
	if offers == nil {
		return nil
	}

	cloned := make([]api.Offer, len(offers))
	for i, offer := range offers {
		offer.Skills = append([]string(nil), offer.Skills...)
		cloned[i] = offer
	}
	return cloned
}
