package services

import (
	"sync"

	"promptlab-backend/internal/store"
)

// New wires the prompt and collection services around a single store.
//
// Both services share one write mutex. Individual store operations are
// already atomic, but collection deletion spans several of them (remove, then
// reconcile every dependent prompt); the shared mutex keeps a concurrent
// prompt write from slipping in between and re-pointing at the dying
// collection.
func New(st *store.Store) (*PromptService, *CollectionService) {
	mu := &sync.Mutex{}
	return &PromptService{store: st, mu: mu},
		&CollectionService{store: st, mu: mu, cascade: NewCascadeCoordinator(st)}
}
