package api

import (
	"promptlab-backend/config"
	"promptlab-backend/internal/api/v1/collection"
	"promptlab-backend/internal/api/v1/health"
	"promptlab-backend/internal/api/v1/prompt"
	"promptlab-backend/internal/middleware"
	"promptlab-backend/internal/services"
	"promptlab-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine around an injected store. Tests construct
// their own store per case instead of sharing process-global state.
func NewRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	prompts, collections := services.New(st)

	health.RegisterRoutes(router)

	root := router.Group("")
	{
		prompt.RegisterRoutes(root, prompts)
		collection.RegisterRoutes(root, collections)
	}

	return router
}
