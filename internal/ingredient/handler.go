package ingredient

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /zones
func (h *Handler) ListZones(c *gin.Context) {
	zones, err := h.service.ListZones(c.Request.Context())
	if err != nil {
		log.Printf("[ingredient.ListZones] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch zones"})
		return
	}

	c.JSON(http.StatusOK, zones)
}

// POST /zones (ADMIN)
func (h *Handler) CreateZone(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	zone, err := h.service.CreateZone(c.Request.Context(), req.Name)
	switch {
	case errors.Is(err, ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "zone name is empty"})
		return
	case errors.Is(err, ErrZoneExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("[ingredient.CreateZone] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add the zone"})
		return
	}

	c.JSON(http.StatusCreated, zone)
}

// GET /ingredients
func (h *Handler) ListIngredients(c *gin.Context) {
	ingredients, err := h.service.ListIngredients(c.Request.Context())
	if err != nil {
		log.Printf("[ingredient.ListIngredients] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch ingredients"})
		return
	}

	c.JSON(http.StatusOK, ingredients)
}

// POST /ingredients
func (h *Handler) CreateIngredient(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Unit   string `json:"unit"`
		ZoneID string `json:"zone_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ing, created, err := h.service.CreateIngredient(
		c.Request.Context(),
		req.Name,
		req.Unit,
		req.ZoneID,
	)
	switch {
	case errors.Is(err, ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient name is empty"})
		return
	case errors.Is(err, ErrUnknownZone):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("[ingredient.CreateIngredient] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add the ingredient"})
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	c.JSON(status, ing)
}
