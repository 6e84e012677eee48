package prompt

import (
	"promptlab-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, prompts *services.PromptService) {
	h := NewHandler(prompts)

	promptGroup := router.Group("/prompts")
	{
		promptGroup.GET("", h.ListPrompts)
		promptGroup.POST("", h.CreatePrompt)
		promptGroup.GET("/:id", h.GetPrompt)
		promptGroup.GET("/:id/variables", h.GetPromptVariables)
		promptGroup.PUT("/:id", h.UpdatePrompt)
		promptGroup.PATCH("/:id", h.PatchPrompt)
		promptGroup.DELETE("/:id", h.DeletePrompt)
	}
}
