package services

import (
	"encoding/json"
	"fmt"

	"galleria/internal/models"
	"galleria/internal/repositories"
)

type CollectionService interface {
	Create(name, description string, imageIDs []int) (*models.Collection, error)
	GetByID(id int) (*models.Collection, error)
	List() ([]*models.Collection, error)
}

type collectionService struct {
	repo   repositories.CollectionRepository
	images repositories.ImageRepository
}

func NewCollectionService(repo repositories.CollectionRepository, images repositories.ImageRepository) CollectionService {
	return &collectionService{repo: repo, images: images}
}

func (s *collectionService) Create(name, description string, imageIDs []int) (*models.Collection, error) {
	if imageIDs == nil {
		imageIDs = []int{}
	}
	idsJSON, err := json.Marshal(imageIDs)
	if err != nil {
		return nil, fmt.Errorf("collection ids encode: %w", err)
	}
	c := &models.Collection{
		Name:        name,
		Description: description,
		IDsList:     string(idsJSON),
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return s.expand(c)
}

func (s *collectionService) GetByID(id int) (*models.Collection, error) {
	c, err := s.repo.GetByID(id)
	if err != nil || c == nil {
		return c, err
	}
	return s.expand(c)
}

func (s *collectionService) List() ([]*models.Collection, error) {
	cs, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	for _, c := range cs {
		if _, err := s.expand(c); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// expand resolves the stored JSON id list into the collection's images.
func (s *collectionService) expand(c *models.Collection) (*models.Collection, error) {
	var ids []int
	if err := json.Unmarshal([]byte(c.IDsList), &ids); err != nil {
		return nil, fmt.Errorf("collection ids decode: %w", err)
	}
	imgs, err := s.images.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if imgs == nil {
		imgs = []*models.Image{}
	}
	c.Images = imgs
	return c, nil
}
