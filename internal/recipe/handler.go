package recipe

import (
	"errors"
	"log"
	"net/http"

	"grocerylist/internal/middleware"
	"grocerylist/internal/selection"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name        string                  `json:"name"`
	Ingredients selection.State[string] `json:"ingredients"`
	Optional    []string                `json:"optional"`
}

// --------------------------------------------------
// GET /recipes
// --------------------------------------------------
func (h *Handler) Load(c *gin.Context) {
	page, err := h.service.Load(c.Request.Context())
	if err != nil {
		log.Printf("[recipe.Load] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load the page"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// --------------------------------------------------
// POST /recipes
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	detail, err := h.service.Create(
		c.Request.Context(),
		userID,
		req.Name,
		req.Ingredients,
		req.Optional,
	)
	switch {
	case errors.Is(err, ErrEmptyName),
		errors.Is(err, ErrNoIngredientSelected),
		errors.Is(err, ErrIngredientQtyMissing),
		errors.Is(err, ErrIngredientQtyNotNumber),
		errors.Is(err, ErrUnknownIngredient):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("[recipe.Create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add the recipe"})
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// --------------------------------------------------
// GET /recipes/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("[recipe.Get] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch the recipe"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
