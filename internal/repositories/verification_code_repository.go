package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"galleria/internal/models"
)

type VerificationCodeRepository interface {
	Upsert(email, code string, issuedAt time.Time) error
	GetByEmail(email string) (*models.VerificationCode, error)
	Delete(email, code string) error
}

type verificationCodeRepository struct {
	DB *sql.DB
}

func NewVerificationCodeRepository(db *sql.DB) VerificationCodeRepository {
	return &verificationCodeRepository{DB: db}
}

// Upsert replaces any outstanding code for the email in a single statement,
// so two concurrent sends cannot leave zero or two rows behind.
func (r *verificationCodeRepository) Upsert(email, code string, issuedAt time.Time) error {
	const q = `
		INSERT INTO verification_codes (email, code, issued_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email)
		DO UPDATE SET code = EXCLUDED.code, issued_at = EXCLUDED.issued_at
	`
	if _, err := r.DB.Exec(q, email, code, issuedAt); err != nil {
		return fmt.Errorf("verification_code upsert: %w", err)
	}
	return nil
}

func (r *verificationCodeRepository) GetByEmail(email string) (*models.VerificationCode, error) {
	const q = `
		SELECT id, email, code, issued_at
		FROM verification_codes
		WHERE email = $1
	`
	v := &models.VerificationCode{}
	err := r.DB.QueryRow(q, email).Scan(&v.ID, &v.Email, &v.Code, &v.IssuedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("verification_code get: %w", err)
	}
	return v, nil
}

// Delete removes the row only if the code still matches; the check and the
// delete happen in one statement.
func (r *verificationCodeRepository) Delete(email, code string) error {
	_, err := r.DB.Exec(`DELETE FROM verification_codes WHERE email=$1 AND code=$2`, email, code)
	if err != nil {
		return fmt.Errorf("verification_code delete: %w", err)
	}
	return nil
}
