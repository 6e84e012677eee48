package collection

import (
	"net/http"

	"promptlab-backend/internal/services"
	"promptlab-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	collections *services.CollectionService
}

func NewHandler(collections *services.CollectionService) *Handler {
	return &Handler{collections: collections}
}

// ListCollections godoc
// @Summary List collections
// @Description Get all collections
// @Tags collections
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=CollectionListResponse}
// @Router /collections [get]
func (h *Handler) ListCollections(c *gin.Context) {
	items := h.collections.List()

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", CollectionListResponse{
		Total: len(items),
		Items: items,
	}))
}

// GetCollection godoc
// @Summary Get a collection
// @Description Get a collection by id
// @Tags collections
// @Accept json
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} utils.Response{data=models.Collection}
// @Failure 404 {object} utils.Response
// @Router /collections/{id} [get]
func (h *Handler) GetCollection(c *gin.Context) {
	col, err := h.collections.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Collection not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", col))
}

// CreateCollection godoc
// @Summary Create a new collection
// @Description Create a named grouping for prompts
// @Tags collections
// @Accept json
// @Produce json
// @Param request body CreateCollectionRequest true "Create Collection Request"
// @Success 201 {object} utils.Response{data=models.Collection}
// @Failure 400 {object} utils.Response
// @Router /collections [post]
func (h *Handler) CreateCollection(c *gin.Context) {
	var req CreateCollectionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	col, err := h.collections.Create(services.CreateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.NewCreatedResponse("Collection created successfully", col))
}

// DeleteCollection godoc
// @Summary Delete a collection
// @Description Delete a collection; its prompts are detached, not deleted
// @Tags collections
// @Accept json
// @Produce json
// @Param id path string true "Collection ID"
// @Success 204
// @Failure 404 {object} utils.Response
// @Router /collections/{id} [delete]
func (h *Handler) DeleteCollection(c *gin.Context) {
	if err := h.collections.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Collection not found"))
		return
	}

	c.Status(http.StatusNoContent)
}
