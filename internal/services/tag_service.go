package services

import (
	"errors"

	"galleria/internal/repositories"
)

var ErrImageNotFound = errors.New("image not found")

type TagService interface {
	AddTags(imageID int, names []string) error
	ListTags(imageID int) ([]string, error)
}

type tagService struct {
	repo   repositories.TagRepository
	images repositories.ImageRepository
}

func NewTagService(repo repositories.TagRepository, images repositories.ImageRepository) TagService {
	return &tagService{repo: repo, images: images}
}

func (s *tagService) AddTags(imageID int, names []string) error {
	img, err := s.images.GetByID(imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrImageNotFound
	}
	for _, name := range names {
		tag, err := s.repo.GetOrCreate(name)
		if err != nil {
			return err
		}
		if err := s.repo.Attach(imageID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *tagService) ListTags(imageID int) ([]string, error) {
	img, err := s.images.GetByID(imageID)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrImageNotFound
	}
	names, err := s.repo.ListByImage(imageID)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
