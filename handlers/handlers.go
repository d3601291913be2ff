package handlers

import (
	"net/http"
	"strconv"
	"time"

	"partmatch/models"
	"partmatch/services"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	catalog *services.CatalogService
}

// NewHandlers creates a new handlers instance
func NewHandlers(catalog *services.CatalogService) *Handlers {
	return &Handlers{catalog: catalog}
}

// IndexPart adds a part to the catalog or updates its existing entry
func (h *Handlers) IndexPart(c *gin.Context) {
	var req models.IndexPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Invalid index part request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	part, tokens, err := h.catalog.IndexPart(c.Request.Context(), &req)
	if err != nil {
		log.Errorf("Failed to index part %q/%q: %v", req.Brand, req.PartNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to index part",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.IndexPartResponse{
		Success:      true,
		Message:      "Part indexed successfully",
		Seq:          part.Seq,
		CanonicalKey: part.CanonicalKey,
		Tokens:       tokens,
	})
}

// DeletePart removes a part from the catalog
func (h *Handlers) DeletePart(c *gin.Context) {
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil || seq <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid part sequence",
		})
		return
	}

	if err := h.catalog.DeletePart(c.Request.Context(), seq); err != nil {
		log.Errorf("Failed to delete part %d: %v", seq, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete part",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Part deleted successfully",
		"seq":     seq,
	})
}

// Match generates match candidates for a raw brand / part number descriptor
func (h *Handlers) Match(c *gin.Context) {
	number := c.Query("number")
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Part number is required",
		})
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	candidates, tokens, err := h.catalog.MatchCandidates(c.Request.Context(), c.Query("brand"), number, limit)
	if err != nil {
		log.Errorf("Failed to match %q/%q: %v", c.Query("brand"), number, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to generate match candidates",
			"error":   err.Error(),
		})
		return
	}

	if candidates == nil {
		candidates = []models.MatchCandidate{}
	}
	if tokens == nil {
		tokens = []string{}
	}
	c.JSON(http.StatusOK, models.MatchResponse{
		Success:    true,
		Candidates: candidates,
		Tokens:     tokens,
	})
}

// Lookup returns the parts stored under the exact canonical key of a raw part number
func (h *Handlers) Lookup(c *gin.Context) {
	number := c.Query("number")
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Part number is required",
		})
		return
	}

	parts, err := h.catalog.FindByCanonicalKey(c.Request.Context(), number)
	if err != nil {
		log.Errorf("Failed to look up part %q: %v", number, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to look up part",
			"error":   err.Error(),
		})
		return
	}

	if parts == nil {
		parts = []models.Part{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"parts":   parts,
	})
}

// ResolveBrand returns the canonical display form and synonym set of a brand
func (h *Handlers) ResolveBrand(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Brand name is required",
		})
		return
	}

	c.JSON(http.StatusOK, h.catalog.ResolveBrand(name))
}

// HealthHandler returns service liveness
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Service:   "part-matching-service",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
