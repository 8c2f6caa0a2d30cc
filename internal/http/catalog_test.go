package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loncotes/library/internal/entities"
)

type failingCatalogStore struct{}

func (failingCatalogStore) ListMaterialTypes(context.Context) ([]entities.MaterialType, error) {
	return nil, errors.New("boom")
}

func (failingCatalogStore) ListGenres(context.Context) ([]entities.Genre, error) {
	return nil, errors.New("boom")
}

func TestListMaterialTypes(t *testing.T) {
	router, _ := setupLibraryRouter(t)

	w := doRequest(router, http.MethodGet, "/api/materialTypes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var types []MaterialTypeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	require.Len(t, types, 3)
	assert.Equal(t, MaterialTypeDTO{ID: 1, Name: "Book", CheckoutDays: 14}, types[0])
	assert.Equal(t, MaterialTypeDTO{ID: 2, Name: "Periodical", CheckoutDays: 7}, types[1])
	assert.Equal(t, MaterialTypeDTO{ID: 3, Name: "CD", CheckoutDays: 7}, types[2])
}

func TestListGenres(t *testing.T) {
	router, _ := setupLibraryRouter(t)

	w := doRequest(router, http.MethodGet, "/api/genres", "")
	require.Equal(t, http.StatusOK, w.Code)

	var genres []GenreDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genres))
	require.Len(t, genres, 5)
	assert.Equal(t, "Science Fiction", genres[0].Name)
	assert.Equal(t, "Jazz", genres[4].Name)
	assert.Equal(t, uint(seedJazzGenreID), genres[4].ID)
}

func TestCatalog_StoreErrors(t *testing.T) {
	controller := NewCatalogController(failingCatalogStore{})
	router := gin.New()
	router.GET("/api/materialTypes", controller.ListMaterialTypes)
	router.GET("/api/genres", controller.ListGenres)

	for _, path := range []string{"/api/materialTypes", "/api/genres"} {
		w := doRequest(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Contains(t, w.Body.String(), "internal server error", path)
	}
}
