package services

import (
	"sync"
	"time"

	"promptlab-backend/internal/models"
	"promptlab-backend/internal/store"

	"github.com/google/uuid"
)

// CollectionService owns collection CRUD. Deleting a collection triggers the
// cascade synchronously: the delete is not complete until every dependent
// prompt has been detached.
type CollectionService struct {
	store   *store.Store
	mu      *sync.Mutex
	cascade *CascadeCoordinator
}

// CreateCollectionInput carries the fields for a new collection.
type CreateCollectionInput struct {
	Name        string
	Description *string
}

func (s *CollectionService) Create(in CreateCollectionInput) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := models.Collection{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	return s.store.CreateCollection(collection)
}

func (s *CollectionService) Get(id string) (models.Collection, error) {
	collection, ok := s.store.GetCollection(id)
	if !ok {
		return models.Collection{}, ErrCollectionNotFound
	}
	return collection, nil
}

func (s *CollectionService) List() []models.Collection {
	return s.store.GetAllCollections()
}

// Delete removes the collection and reconciles its prompts before returning.
// The write mutex is held across both steps so no prompt write can observe
// the gap between removal and reconciliation.
func (s *CollectionService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.DeleteCollection(id) {
		return ErrCollectionNotFound
	}
	s.cascade.ReconcileCollectionDeletion(id)
	return nil
}

// CascadeCoordinator restores referential integrity after a collection is
// removed.
type CascadeCoordinator struct {
	store *store.Store
}

func NewCascadeCoordinator(st *store.Store) *CascadeCoordinator {
	return &CascadeCoordinator{store: st}
}

// ReconcileCollectionDeletion detaches every prompt still referencing
// collectionID and persists each change. After it returns no prompt in the
// store references the deleted collection. Returns the number of prompts
// reconciled.
func (c *CascadeCoordinator) ReconcileCollectionDeletion(collectionID string) int {
	prompts := c.store.GetPromptsByCollection(collectionID)
	for _, p := range prompts {
		p.CollectionID = nil
		p.UpdatedAt = time.Now().UTC()
		c.store.UpdatePrompt(p.ID, p)
	}
	return len(prompts)
}
