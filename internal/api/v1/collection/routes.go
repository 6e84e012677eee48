package collection

import (
	"promptlab-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, collections *services.CollectionService) {
	h := NewHandler(collections)

	collectionGroup := router.Group("/collections")
	{
		collectionGroup.GET("", h.ListCollections)
		collectionGroup.POST("", h.CreateCollection)
		collectionGroup.GET("/:id", h.GetCollection)
		collectionGroup.DELETE("/:id", h.DeleteCollection)
	}
}
