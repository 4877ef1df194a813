package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"galleria/internal/services"
)

type TagHandler struct {
	tags services.TagService
}

func NewTagHandler(tags services.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) AddTags(c *gin.Context) {
	imageID, err := strconv.Atoi(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image id"})
		return
	}

	var req struct {
		TagNames []string `json:"tag_names" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tags.AddTags(imageID, req.TagNames); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add tags"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tags added successfully"})
}

func (h *TagHandler) ListTags(c *gin.Context) {
	imageID, err := strconv.Atoi(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image id"})
		return
	}

	names, err := h.tags.ListTags(imageID)
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tags"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": names})
}
