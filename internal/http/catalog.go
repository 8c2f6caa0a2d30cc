package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loncotes/library/internal/entities"
)

// CatalogStore defines read access to material types and genres.
type CatalogStore interface {
	ListMaterialTypes(ctx context.Context) ([]entities.MaterialType, error)
	ListGenres(ctx context.Context) ([]entities.Genre, error)
}

type CatalogController struct {
	store CatalogStore
}

func NewCatalogController(store CatalogStore) *CatalogController {
	return &CatalogController{store: store}
}

// ListMaterialTypes
//
//	@Summary	List material types
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	MaterialTypeDTO
//	@Router		/materialTypes [get]
func (cc *CatalogController) ListMaterialTypes(c *gin.Context) {
	types, err := cc.store.ListMaterialTypes(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list material types")
		return
	}

	response := make([]MaterialTypeDTO, 0, len(types))
	for _, mt := range types {
		response = append(response, toMaterialTypeDTO(mt))
	}
	c.JSON(http.StatusOK, response)
}

// ListGenres
//
//	@Summary	List genres
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	GenreDTO
//	@Router		/genres [get]
func (cc *CatalogController) ListGenres(c *gin.Context) {
	genres, err := cc.store.ListGenres(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}

	response := make([]GenreDTO, 0, len(genres))
	for _, g := range genres {
		response = append(response, toGenreDTO(g))
	}
	c.JSON(http.StatusOK, response)
}
