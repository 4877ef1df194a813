package services

import (
	"errors"
	"log"
	"time"

	"galleria/internal/models"
	"galleria/internal/repositories"
	"galleria/internal/validate"
)

var (
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired verification code")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("email already exists")
	ErrIncorrectCredentials = errors.New("incorrect username or password")
)

// RegistrationService orchestrates the send-code / register / login
// workflow over the code ledger and the credential store.
type RegistrationService struct {
	users  repositories.UserRepository
	codes  *VerificationService
	emails EmailService
	tokens *TokenService
}

func NewRegistrationService(
	users repositories.UserRepository,
	codes *VerificationService,
	emails EmailService,
	tokens *TokenService,
) *RegistrationService {
	return &RegistrationService{
		users:  users,
		codes:  codes,
		emails: emails,
		tokens: tokens,
	}
}

// RequestCode validates the address, issues a fresh code and dispatches it.
// An already-issued code is not rolled back if dispatch fails.
func (s *RegistrationService) RequestCode(email string) error {
	addr, ok := validate.Email(email)
	if !ok {
		return ErrInvalidEmail
	}

	code, err := s.codes.Issue(addr, time.Now())
	if err != nil {
		return err
	}

	if err := s.emails.SendVerificationCode(addr, code); err != nil {
		log.Printf("[register][send-code] dispatch failed for %s: %v", addr, err)
		return err
	}

	log.Printf("[register][send-code] code issued for %s", addr)
	return nil
}

// Register runs the checks in fixed order; the first failure halts the
// workflow with no side effects.
func (s *RegistrationService) Register(username, email, password, code string) (*models.User, error) {
	addr, ok := validate.Email(email)
	if !ok {
		return nil, ErrInvalidEmail
	}

	valid, err := s.codes.Validate(addr, code, time.Now())
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrInvalidOrExpiredCode
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.users.GetByEmail(addr)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        addr,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		// constraint backstop for the concurrent-registration race
		switch {
		case errors.Is(err, repositories.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if err := s.codes.Consume(addr, code); err != nil {
		log.Printf("[register] consume code failed for %s: %v", addr, err)
	}

	log.Printf("[register] user created: id=%d username=%q", user.ID, user.Username)
	return user, nil
}

// Login checks credentials and issues an access token for the username.
func (s *RegistrationService) Login(username, password string) (string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil || !VerifyPassword(user.PasswordHash, password) {
		return "", ErrIncorrectCredentials
	}

	token, err := s.tokens.Issue(user.Username, time.Now())
	if err != nil {
		return "", err
	}
	log.Printf("[auth][login] success username=%q", user.Username)
	return token, nil
}
