package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loncotes/library/internal/entities"
)

// PatronStore defines read access to patrons and their loans.
type PatronStore interface {
	ListWithCheckouts(ctx context.Context) ([]entities.Patron, error)
}

type PatronsController struct {
	store PatronStore
}

func NewPatronsController(store PatronStore) *PatronsController {
	return &PatronsController{store: store}
}

// ListPatrons returns every patron with the full checkout history.
//
//	@Summary	List patrons with checkouts
//	@Tags		patrons
//	@Produce	json
//	@Success	200	{array}	PatronDTO
//	@Router		/patrons [get]
func (pc *PatronsController) ListPatrons(c *gin.Context) {
	patrons, err := pc.store.ListWithCheckouts(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list patrons")
		return
	}

	response := make([]PatronDTO, 0, len(patrons))
	for _, p := range patrons {
		response = append(response, toPatronWithCheckouts(p))
	}
	c.JSON(http.StatusOK, response)
}
