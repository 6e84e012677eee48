package store

import (
	"errors"
	"sync"

	"promptlab-backend/internal/models"
)

// ErrDuplicateID is returned when a create collides with an existing id.
// Under uuid generation this indicates a caller bug, not a runtime condition.
var ErrDuplicateID = errors.New("id already exists")

// Store is the in-memory home of prompts and collections. Every instance is
// independent; construct one per server (or per test) with New and pass it
// down explicitly.
//
// Each method is atomic under the store's lock. Listings return insertion
// order, which is stable but not semantically meaningful; callers that need
// an order must sort.
type Store struct {
	mu sync.RWMutex

	prompts     map[string]models.Prompt
	promptIDs   []string
	collections map[string]models.Collection
	colIDs      []string
}

func New() *Store {
	return &Store{
		prompts:     make(map[string]models.Prompt),
		collections: make(map[string]models.Collection),
	}
}

// ============== Prompt Operations ==============

func (s *Store) CreatePrompt(p models.Prompt) (models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.prompts[p.ID]; exists {
		return models.Prompt{}, ErrDuplicateID
	}
	s.prompts[p.ID] = p
	s.promptIDs = append(s.promptIDs, p.ID)
	return p, nil
}

// GetPrompt reports a miss through the bool; an unknown id is a normal
// outcome, never an error.
func (s *Store) GetPrompt(id string) (models.Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prompts[id]
	return p, ok
}

func (s *Store) GetAllPrompts() []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Prompt, 0, len(s.promptIDs))
	for _, id := range s.promptIDs {
		out = append(out, s.prompts[id])
	}
	return out
}

// UpdatePrompt replaces the stored prompt only if the id exists.
func (s *Store) UpdatePrompt(id string, p models.Prompt) (models.Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return models.Prompt{}, false
	}
	s.prompts[id] = p
	return p, true
}

func (s *Store) DeletePrompt(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return false
	}
	delete(s.prompts, id)
	s.promptIDs = removeID(s.promptIDs, id)
	return true
}

// GetPromptsByCollection returns the prompts whose collection_id equals the
// given id. Prompts without a collection never match, whatever the argument;
// "no filter" is expressed by not calling this at all.
func (s *Store) GetPromptsByCollection(collectionID string) []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Prompt
	for _, id := range s.promptIDs {
		p := s.prompts[id]
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			out = append(out, p)
		}
	}
	return out
}

// ============== Collection Operations ==============

func (s *Store) CreateCollection(c models.Collection) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.collections[c.ID]; exists {
		return models.Collection{}, ErrDuplicateID
	}
	s.collections[c.ID] = c
	s.colIDs = append(s.colIDs, c.ID)
	return c, nil
}

func (s *Store) GetCollection(id string) (models.Collection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[id]
	return c, ok
}

func (s *Store) GetAllCollections() []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Collection, 0, len(s.colIDs))
	for _, id := range s.colIDs {
		out = append(out, s.collections[id])
	}
	return out
}

func (s *Store) DeleteCollection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[id]; !ok {
		return false
	}
	delete(s.collections, id)
	s.colIDs = removeID(s.colIDs, id)
	return true
}

// ============== Utility ==============

// Clear drops all prompts and collections.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = make(map[string]models.Prompt)
	s.promptIDs = nil
	s.collections = make(map[string]models.Collection)
	s.colIDs = nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
