package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"galleria/internal/models"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateAvatar(userID int, avatarURL string) error
	UpdateProfile(user *models.User) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (username, email, password_hash, is_active, avatar, description, blog)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(q,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.Avatar,
		user.Description,
		user.Blog,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		// uniqueness backstop: map constraint violations to conflict errors
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			switch pqErr.Constraint {
			case "users_username_key":
				return ErrDuplicateUsername
			case "users_email_key":
				return ErrDuplicateEmail
			}
		}
		return fmt.Errorf("user create: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	return r.getBy(`WHERE id = $1`, id)
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	return r.getBy(`WHERE username = $1`, username)
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	return r.getBy(`WHERE email = $1`, email)
}

func (r *userRepository) getBy(where string, arg interface{}) (*models.User, error) {
	q := `
		SELECT id, username, email, password_hash, is_active,
			COALESCE(avatar,''), COALESCE(description,''), COALESCE(blog,''),
			created_at
		FROM users ` + where
	u := &models.User{}
	err := r.DB.QueryRow(q, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive,
		&u.Avatar, &u.Description, &u.Blog,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("user get: %w", err)
	}
	return u, nil
}

func (r *userRepository) UpdateAvatar(userID int, avatarURL string) error {
	_, err := r.DB.Exec(`UPDATE users SET avatar=$1 WHERE id=$2`, avatarURL, userID)
	if err != nil {
		return fmt.Errorf("user update avatar: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateProfile(user *models.User) error {
	const q = `
		UPDATE users
		SET avatar=$1, description=$2, blog=$3
		WHERE id=$4
	`
	_, err := r.DB.Exec(q, user.Avatar, user.Description, user.Blog, user.ID)
	if err != nil {
		return fmt.Errorf("user update profile: %w", err)
	}
	return nil
}
