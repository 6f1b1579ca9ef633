package export

import (
	"errors"
	"log"
	"net/http"

	"grocerylist/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /grocery/exports
// --------------------------------------------------
func (h *Handler) Request(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	e, err := h.service.Request(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[export.Request] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to request the export"})
		return
	}

	c.JSON(http.StatusAccepted, e)
}

// --------------------------------------------------
// GET /grocery/exports/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	e, err := h.service.Get(c.Request.Context(), userID, c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("[export.Get] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch the export"})
		return
	}

	c.JSON(http.StatusOK, e)
}
