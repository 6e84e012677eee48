package services

import (
	"sync"
	"time"

	"promptlab-backend/internal/models"
	"promptlab-backend/internal/query"
	"promptlab-backend/internal/store"

	"github.com/google/uuid"
)

// PromptService owns prompt CRUD and the listing pipeline. Construct via New
// so it shares the write mutex with the collection service.
type PromptService struct {
	store *store.Store
	mu    *sync.Mutex
}

// CreatePromptInput carries the full field set for a new prompt.
type CreatePromptInput struct {
	Title        string
	Content      string
	Description  *string
	CollectionID *string
}

// UpdatePromptInput carries the full replacement field set. Nil optionals
// replace the stored value with null; nothing is carried forward.
type UpdatePromptInput struct {
	Title        string
	Content      string
	Description  *string
	CollectionID *string
}

// PatchPromptInput carries only the fields to change. A field that is not
// Set is left as is; a Set field with a nil value clears it (null for the
// nullable fields, a validation error for title and content).
type PatchPromptInput struct {
	Title        models.Optional[string]
	Content      models.Optional[string]
	Description  models.Optional[string]
	CollectionID models.Optional[string]
}

// Create validates the collection reference, assigns an id and timestamps,
// and inserts the prompt.
func (s *PromptService) Create(in CreatePromptInput) (models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.CollectionID != nil {
		if _, ok := s.store.GetCollection(*in.CollectionID); !ok {
			return models.Prompt{}, ErrCollectionNotFound
		}
	}

	now := time.Now().UTC()
	prompt := models.Prompt{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Content:      in.Content,
		Description:  in.Description,
		CollectionID: in.CollectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.store.CreatePrompt(prompt)
}

func (s *PromptService) Get(id string) (models.Prompt, error) {
	prompt, ok := s.store.GetPrompt(id)
	if !ok {
		return models.Prompt{}, ErrPromptNotFound
	}
	return prompt, nil
}

// List runs the fixed read pipeline: filter by collection, then search, then
// sort newest-first. Empty collectionID or search means that stage is skipped.
func (s *PromptService) List(collectionID, search string) []models.Prompt {
	prompts := s.store.GetAllPrompts()

	if collectionID != "" {
		prompts = query.FilterByCollection(prompts, collectionID)
	}
	if search != "" {
		prompts = query.Search(prompts, search)
	}
	return query.SortByCreated(prompts, true)
}

// Update replaces every mutable field. The id and created_at are preserved;
// updated_at is refreshed. An unknown collection reference fails before any
// write.
func (s *PromptService) Update(id string, in UpdatePromptInput) (models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.store.GetPrompt(id)
	if !ok {
		return models.Prompt{}, ErrPromptNotFound
	}
	if in.CollectionID != nil {
		if _, ok := s.store.GetCollection(*in.CollectionID); !ok {
			return models.Prompt{}, ErrCollectionNotFound
		}
	}

	updated := models.Prompt{
		ID:           existing.ID,
		Title:        in.Title,
		Content:      in.Content,
		Description:  in.Description,
		CollectionID: in.CollectionID,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}
	// Existence was checked above under the same lock; the replace cannot miss.
	updated, _ = s.store.UpdatePrompt(id, updated)
	return updated, nil
}

// Patch merges the provided fields into the stored prompt. Supplying no
// fields at all is a validation error, not a no-op.
func (s *PromptService) Patch(id string, in PatchPromptInput) (models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.store.GetPrompt(id)
	if !ok {
		return models.Prompt{}, ErrPromptNotFound
	}
	if !in.Title.Set && !in.Content.Set && !in.Description.Set && !in.CollectionID.Set {
		return models.Prompt{}, ErrNoFieldsProvided
	}
	if (in.Title.Set && in.Title.Value == nil) || (in.Content.Set && in.Content.Value == nil) {
		return models.Prompt{}, ErrNullRequiredField
	}
	// An explicit null detaches; only a concrete id needs to exist.
	if in.CollectionID.Set && in.CollectionID.Value != nil {
		if _, ok := s.store.GetCollection(*in.CollectionID.Value); !ok {
			return models.Prompt{}, ErrCollectionNotFound
		}
	}

	updated := existing
	if in.Title.Set {
		updated.Title = *in.Title.Value
	}
	if in.Content.Set {
		updated.Content = *in.Content.Value
	}
	if in.Description.Set {
		updated.Description = in.Description.Value
	}
	if in.CollectionID.Set {
		updated.CollectionID = in.CollectionID.Value
	}
	updated.UpdatedAt = time.Now().UTC()

	// Existence was checked above under the same lock; the replace cannot miss.
	updated, _ = s.store.UpdatePrompt(id, updated)
	return updated, nil
}

func (s *PromptService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.DeletePrompt(id) {
		return ErrPromptNotFound
	}
	return nil
}
