package collection

import "promptlab-backend/internal/models"

type CreateCollectionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type CollectionListResponse struct {
	Total int                 `json:"total"`
	Items []models.Collection `json:"items"`
}
