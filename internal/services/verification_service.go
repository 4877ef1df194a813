package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"galleria/internal/repositories"
)

// VerificationService is the ledger of outstanding email codes: one live
// code per address, replaced on every send, valid for a fixed window.
type VerificationService struct {
	repo     repositories.VerificationCodeRepository
	validity time.Duration
}

func NewVerificationService(repo repositories.VerificationCodeRepository, validity time.Duration) *VerificationService {
	if validity <= 0 {
		validity = 10 * time.Minute
	}
	return &VerificationService{repo: repo, validity: validity}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue stores a fresh 6-digit code for the email, replacing any prior
// one, and returns it for dispatch.
func (s *VerificationService) Issue(email string, now time.Time) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}
	if err := s.repo.Upsert(email, code, now); err != nil {
		return "", err
	}
	return code, nil
}

// Validate reports whether the submitted code matches the outstanding one
// and is still inside the validity window. It never mutates the ledger, so
// a nonexistent and an expired code are indistinguishable to the caller.
func (s *VerificationService) Validate(email, code string, now time.Time) (bool, error) {
	rec, err := s.repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	if rec == nil || rec.Code != code {
		return false, nil
	}
	if now.Sub(rec.IssuedAt) > s.validity {
		return false, nil
	}
	return true, nil
}

// Consume deletes the matching code so it cannot be replayed. Called only
// after a successful Validate in the same workflow step.
func (s *VerificationService) Consume(email, code string) error {
	return s.repo.Delete(email, code)
}
