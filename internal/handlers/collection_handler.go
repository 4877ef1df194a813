package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"galleria/internal/models"
	"galleria/internal/services"
)

type CollectionHandler struct {
	collections services.CollectionService
}

func NewCollectionHandler(collections services.CollectionService) *CollectionHandler {
	return &CollectionHandler{collections: collections}
}

func (h *CollectionHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		List        []int  `json:"list"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection, err := h.collections.Create(req.Name, req.Description, req.List)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.collections.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list collections"})
		return
	}
	if collections == nil {
		collections = []*models.Collection{}
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(collections),
		"list":  collections,
	})
}

func (h *CollectionHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection id"})
		return
	}

	collection, err := h.collections.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
		return
	}
	if collection == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}
	c.JSON(http.StatusOK, collection)
}
