package services

import (
	"errors"

	"galleria/internal/models"
	"galleria/internal/repositories"
)

var ErrAuthorNotFound = errors.New("author not found")

type ArticleService interface {
	Create(article *models.Article) error
	GetByID(id int) (*models.Article, error)
	List() ([]*models.Article, error)
}

type articleService struct {
	repo  repositories.ArticleRepository
	users repositories.UserRepository
}

func NewArticleService(repo repositories.ArticleRepository, users repositories.UserRepository) ArticleService {
	return &articleService{repo: repo, users: users}
}

func (s *articleService) Create(article *models.Article) error {
	author, err := s.users.GetByID(article.AuthorID)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrAuthorNotFound
	}
	return s.repo.Create(article)
}

func (s *articleService) GetByID(id int) (*models.Article, error) {
	return s.repo.GetByID(id)
}

func (s *articleService) List() ([]*models.Article, error) {
	return s.repo.List()
}
