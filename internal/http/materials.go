package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loncotes/library/internal/database/materials"
	"github.com/loncotes/library/internal/entities"
)

// invalidDataMessage is the plain-text body for every rejected material write.
const invalidDataMessage = "Invalid data submitted"

// MaterialStore defines database operations for catalog materials.
type MaterialStore interface {
	ListCirculating(ctx context.Context, filter materials.Filter) ([]entities.Material, error)
	GetDetail(ctx context.Context, id uint) (*entities.Material, error)
	Create(ctx context.Context, material *entities.Material) (*entities.Material, error)
	Withdraw(ctx context.Context, id uint, at time.Time) error
}

// MaterialEvents receives notifications about successful material writes.
type MaterialEvents interface {
	RecordMaterialCreated()
	RecordMaterialWithdrawn()
}

type MaterialsController struct {
	store  MaterialStore
	events MaterialEvents
	now    func() time.Time
}

func NewMaterialsController(store MaterialStore, events MaterialEvents) *MaterialsController {
	return &MaterialsController{
		store:  store,
		events: events,
		now:    time.Now,
	}
}

// ListMaterials returns circulating materials, optionally filtered.
//
//	@Summary	List circulating materials
//	@Tags		materials
//	@Produce	json
//	@Param		materialTypeId	query		int	false	"Material type ID"
//	@Param		genreId			query		int	false	"Genre ID"
//	@Success	200				{array}		MaterialDTO
//	@Failure	400				{object}	ErrorResponse
//	@Router		/materials [get]
func (mc *MaterialsController) ListMaterials(c *gin.Context) {
	materialTypeID, ok := parseOptionalQueryID(c, "materialTypeId")
	if !ok {
		return
	}
	genreID, ok := parseOptionalQueryID(c, "genreId")
	if !ok {
		return
	}

	items, err := mc.store.ListCirculating(c.Request.Context(), materials.Filter{
		MaterialTypeID: materialTypeID,
		GenreID:        genreID,
	})
	if err != nil {
		respondInternalError(c, err, "list materials")
		return
	}

	response := make([]MaterialDTO, 0, len(items))
	for _, m := range items {
		response = append(response, toMaterialSummary(m))
	}
	c.JSON(http.StatusOK, response)
}

// GetMaterial returns one material with its checkout history.
//
//	@Summary	Get material detail
//	@Tags		materials
//	@Produce	json
//	@Param		id	path		int	true	"Material ID"
//	@Success	200	{object}	MaterialDTO
//	@Failure	404
//	@Router		/materials/{id} [get]
func (mc *MaterialsController) GetMaterial(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	material, err := mc.store.GetDetail(c.Request.Context(), id)
	if errors.Is(err, materials.ErrNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "get material")
		return
	}

	c.JSON(http.StatusOK, toMaterialDetail(*material))
}

// CreateMaterial adds a new circulating material.
//
//	@Summary	Create material
//	@Tags		materials
//	@Accept		json
//	@Produce	json
//	@Param		material	body		CreateMaterialRequest	true	"New material"
//	@Success	201			{object}	MaterialDTO
//	@Failure	400			{string}	string	"Invalid data submitted"
//	@Router		/materials [post]
func (mc *MaterialsController) CreateMaterial(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, invalidDataMessage)
		return
	}

	created, err := mc.store.Create(c.Request.Context(), &entities.Material{
		MaterialName:   req.MaterialName,
		MaterialTypeID: req.MaterialTypeID,
		GenreID:        req.GenreID,
	})
	if err != nil {
		if !errors.Is(err, materials.ErrInvalidReference) {
			log.Printf("Failed to create material [request %s]: %v", GetRequestID(c), err)
		}
		c.String(http.StatusBadRequest, invalidDataMessage)
		return
	}

	if mc.events != nil {
		mc.events.RecordMaterialCreated()
	}

	c.Header("Location", fmt.Sprintf("/api/materials/%d", created.ID))
	c.JSON(http.StatusCreated, toMaterialSummary(*created))
}

// WithdrawMaterial takes a material out of circulation as of now. Any request
// body is ignored.
//
//	@Summary	Withdraw material from circulation
//	@Tags		materials
//	@Param		id	path	int	true	"Material ID"
//	@Success	204
//	@Failure	404
//	@Router		/materials/{id} [put]
func (mc *MaterialsController) WithdrawMaterial(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := mc.store.Withdraw(c.Request.Context(), id, mc.now())
	if errors.Is(err, materials.ErrNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "withdraw material")
		return
	}

	if mc.events != nil {
		mc.events.RecordMaterialWithdrawn()
	}

	c.Status(http.StatusNoContent)
}
