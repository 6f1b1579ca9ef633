package appconfig

import (
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

// GET /config
func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("[appconfig.List] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load the configuration"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
