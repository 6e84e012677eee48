package collection_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptlab-backend/internal/api/v1/collection"
	"promptlab-backend/internal/models"
	"promptlab-backend/internal/services"
	"promptlab-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupHandler() (*store.Store, *collection.Handler, *services.PromptService) {
	gin.SetMode(gin.TestMode)
	st := store.New()
	prompts, collections := services.New(st)
	return st, collection.NewHandler(collections), prompts
}

func TestCreateCollection(t *testing.T) {
	_, h, _ := setupHandler()

	reqBody := collection.CreateCollectionRequest{Name: "Work"}
	body, _ := json.Marshal(reqBody)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/collections", bytes.NewBuffer(body))

	h.CreateCollection(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Collection `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Work", resp.Data.Name)
	assert.NotEmpty(t, resp.Data.ID)
}

func TestCreateCollectionMissingName(t *testing.T) {
	_, h, _ := setupHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/collections", bytes.NewBufferString(`{}`))

	h.CreateCollection(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCollections(t *testing.T) {
	st, h, _ := setupHandler()

	st.CreateCollection(models.Collection{ID: "c1", Name: "A"})
	st.CreateCollection(models.Collection{ID: "c2", Name: "B"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/collections", nil)

	h.ListCollections(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data collection.CollectionListResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Len(t, resp.Data.Items, 2)
}

func TestGetCollectionNotFound(t *testing.T) {
	_, h, _ := setupHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/collections/doesnotexist", nil)
	c.Params = gin.Params{{Key: "id", Value: "doesnotexist"}}

	h.GetCollection(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCollectionNotFound(t *testing.T) {
	_, h, _ := setupHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/collections/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.DeleteCollection(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Create collection, attach a prompt, delete the collection: the delete
// returns 204 and the prompt survives with a null collection_id.
func TestDeleteCollectionDetachesPrompts(t *testing.T) {
	st, h, prompts := setupHandler()

	col, err := st.CreateCollection(models.Collection{ID: "C1", Name: "Work"})
	assert.NoError(t, err)

	p, err := prompts.Create(services.CreatePromptInput{
		Title:        "T1",
		Content:      "1234567890",
		CollectionID: &col.ID,
	})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/collections/C1", nil)
	c.Params = gin.Params{{Key: "id", Value: "C1"}}

	h.DeleteCollection(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	_, ok := st.GetCollection("C1")
	assert.False(t, ok)

	got, err := prompts.Get(p.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.CollectionID)
}
