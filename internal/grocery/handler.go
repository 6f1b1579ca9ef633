package grocery

import (
	"errors"
	"log"
	"net/http"
	"strconv"

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

type addRecipesRequest struct {
	Recipes selection.State[string] `json:"recipes"`
}

type setCheckedRequest struct {
	Checked *bool `json:"checked"`
}

// failure logs err under tag and answers with a static message. A grocery
// that cannot be fetched or created always gets the same answer.
func failure(c *gin.Context, tag string, err error, message string) {
	log.Printf("[%s] failed: %v", tag, err)
	if errors.Is(err, ErrUnavailable) {
		message = "unable to fetch groceries"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func includeOptional(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.DefaultQuery("include_optional", "true"))
	if err != nil {
		return true
	}
	return v
}

// --------------------------------------------------
// GET /grocery
// --------------------------------------------------
func (h *Handler) Load(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	page, err := h.service.Load(c.Request.Context(), userID)
	if err != nil {
		failure(c, "grocery.Load", err, "unable to load the page")
		return
	}

	c.JSON(http.StatusOK, page)
}

// --------------------------------------------------
// POST /grocery/recipes
// --------------------------------------------------
func (h *Handler) AddRecipes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	page, err := h.service.AddRecipes(c.Request.Context(), userID, req.Recipes)
	switch {
	case errors.Is(err, ErrNoRecipeSelected),
		errors.Is(err, ErrRecipeQtyMissing),
		errors.Is(err, ErrRecipeQtyNotNumber),
		errors.Is(err, ErrUnknownRecipe):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		failure(c, "grocery.AddRecipes", err, "unable to add to the grocery")
		return
	}

	c.JSON(http.StatusCreated, page)
}

// --------------------------------------------------
// DELETE /grocery/recipes/:line_id
// --------------------------------------------------
func (h *Handler) RemoveLine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	lineID, err := strconv.ParseInt(c.Param("line_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line id"})
		return
	}

	page, err := h.service.RemoveLine(c.Request.Context(), userID, lineID)
	if errors.Is(err, ErrLineNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		failure(c, "grocery.RemoveLine", err, "unable to remove the recipe")
		return
	}

	c.JSON(http.StatusOK, page)
}

// --------------------------------------------------
// DELETE /grocery
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		failure(c, "grocery.Clear", err, "unable to clear the grocery")
		return
	}

	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// GET /grocery/buying
// --------------------------------------------------
func (h *Handler) BuyingList(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	groups, err := h.service.BuyingList(c.Request.Context(), userID, includeOptional(c))
	if err != nil {
		failure(c, "grocery.BuyingList", err, "unable to build the buying list")
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// --------------------------------------------------
// PUT /grocery/buying/:ingredient_id
// --------------------------------------------------
func (h *Handler) SetChecked(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req setCheckedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Checked == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checked is required"})
		return
	}

	groups, err := h.service.SetChecked(
		c.Request.Context(),
		userID,
		c.Param("ingredient_id"),
		*req.Checked,
		includeOptional(c),
	)
	if errors.Is(err, ErrUnknownIngredient) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		failure(c, "grocery.SetChecked", err, "unable to update the ingredient status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}
