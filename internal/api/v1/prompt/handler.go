package prompt

import (
	"errors"
	"net/http"

	"promptlab-backend/internal/query"
	"promptlab-backend/internal/services"
	"promptlab-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	prompts *services.PromptService
}

func NewHandler(prompts *services.PromptService) *Handler {
	return &Handler{prompts: prompts}
}

// ListPrompts godoc
// @Summary List prompts
// @Description Get all prompts, optionally filtered by collection and search query, sorted newest first
// @Tags prompts
// @Accept json
// @Produce json
// @Param collection_id query string false "Filter by collection id"
// @Param search query string false "Case-insensitive substring match on title or description"
// @Success 200 {object} utils.Response{data=PromptListResponse}
// @Router /prompts [get]
func (h *Handler) ListPrompts(c *gin.Context) {
	items := h.prompts.List(c.Query("collection_id"), c.Query("search"))

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", PromptListResponse{
		Total: len(items),
		Items: items,
	}))
}

// GetPrompt godoc
// @Summary Get a prompt
// @Description Get a prompt by id
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [get]
func (h *Handler) GetPrompt(c *gin.Context) {
	p, err := h.prompts.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", p))
}

// GetPromptVariables godoc
// @Summary Get template variables of a prompt
// @Description Extract the {{variable}} names referenced in the prompt content
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.Response{data=PromptVariablesResponse}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id}/variables [get]
func (h *Handler) GetPromptVariables(c *gin.Context) {
	p, err := h.prompts.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", PromptVariablesResponse{
		Variables: query.ExtractVariables(p.Content),
	}))
}

// CreatePrompt godoc
// @Summary Create a new prompt
// @Description Create a prompt, optionally attached to an existing collection
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body CreatePromptRequest true "Create Prompt Request"
// @Success 201 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Router /prompts [post]
func (h *Handler) CreatePrompt(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p, err := h.prompts.Create(services.CreatePromptInput{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		if errors.Is(err, services.ErrCollectionNotFound) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Collection not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.NewCreatedResponse("Prompt created successfully", p))
}

// UpdatePrompt godoc
// @Summary Update a prompt
// @Description Replace every field of an existing prompt
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body UpdatePromptRequest true "Update Prompt Request"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [put]
func (h *Handler) UpdatePrompt(c *gin.Context) {
	var req UpdatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p, err := h.prompts.Update(c.Param("id"), services.UpdatePromptInput{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt updated successfully", p))
}

// PatchPrompt godoc
// @Summary Partially update a prompt
// @Description Update only the supplied fields; omitted fields keep their value
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body PatchPromptRequest true "Patch Prompt Request"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [patch]
func (h *Handler) PatchPrompt(c *gin.Context) {
	var req PatchPromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p, err := h.prompts.Patch(c.Param("id"), services.PatchPromptInput{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt updated successfully", p))
}

// DeletePrompt godoc
// @Summary Delete a prompt
// @Description Delete a prompt by id
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 204
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [delete]
func (h *Handler) DeletePrompt(c *gin.Context) {
	if err := h.prompts.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPromptNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
	case errors.Is(err, services.ErrCollectionNotFound):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Collection not found"))
	case errors.Is(err, services.ErrNoFieldsProvided):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields provided for update"))
	case errors.Is(err, services.ErrNullRequiredField):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Title and content cannot be null"))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
	}
}
