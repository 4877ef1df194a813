package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"galleria/internal/models"
	"galleria/internal/services"
)

type ArticleHandler struct {
	articles services.ArticleService
}

func NewArticleHandler(articles services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req struct {
		AuthorName   string `json:"author_name" binding:"required"`
		AuthorID     int    `json:"author_id" binding:"required"`
		AuthorAvatar string `json:"author_avatar"`
		Title        string `json:"title" binding:"required"`
		Content      string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article := &models.Article{
		AuthorID:     req.AuthorID,
		AuthorName:   req.AuthorName,
		AuthorAvatar: req.AuthorAvatar,
		Title:        req.Title,
		Content:      req.Content,
	}
	if err := h.articles.Create(article); err != nil {
		if errors.Is(err, services.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list articles"})
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := h.articles.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}
