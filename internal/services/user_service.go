package services

import (
	"galleria/internal/models"
	"galleria/internal/repositories"
)

type UserService interface {
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	UpdateAvatar(userID int, avatarURL string) error
	UpdateProfile(user *models.User) error
}

type userService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByUsername(username string) (*models.User, error) {
	return s.repo.GetByUsername(username)
}

func (s *userService) GetByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) UpdateAvatar(userID int, avatarURL string) error {
	return s.repo.UpdateAvatar(userID, avatarURL)
}

func (s *userService) UpdateProfile(user *models.User) error {
	return s.repo.UpdateProfile(user)
}
