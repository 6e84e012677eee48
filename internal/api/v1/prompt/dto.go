package prompt

import "promptlab-backend/internal/models"

type CreatePromptRequest struct {
	Title        string  `json:"title" binding:"required"`
	Content      string  `json:"content" binding:"required"`
	Description  *string `json:"description"`
	CollectionID *string `json:"collection_id"`
}

// UpdatePromptRequest is a full replacement: omitted optional fields become
// null on the stored prompt, they are not carried forward.
type UpdatePromptRequest struct {
	Title        string  `json:"title" binding:"required"`
	Content      string  `json:"content" binding:"required"`
	Description  *string `json:"description"`
	CollectionID *string `json:"collection_id"`
}

// PatchPromptRequest carries only the fields to change. Optional wrappers
// keep field presence, so an explicit null clears a nullable field while an
// omitted field leaves it unchanged.
type PatchPromptRequest struct {
	Title        models.Optional[string] `json:"title"`
	Content      models.Optional[string] `json:"content"`
	Description  models.Optional[string] `json:"description"`
	CollectionID models.Optional[string] `json:"collection_id"`
}

type PromptListResponse struct {
	Total int             `json:"total"`
	Items []models.Prompt `json:"items"`
}

type PromptVariablesResponse struct {
	Variables []string `json:"variables"`
}
