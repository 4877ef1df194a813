package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"galleria/internal/models"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id int) (*models.Article, error)
	List() ([]*models.Article, error)
}

type articleRepository struct {
	DB *sql.DB
}

func NewArticleRepository(db *sql.DB) ArticleRepository {
	return &articleRepository{DB: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	const q = `
		INSERT INTO articles (author_id, author_name, author_avatar, title, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(q,
		article.AuthorID,
		article.AuthorName,
		article.AuthorAvatar,
		article.Title,
		article.Content,
	).Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return fmt.Errorf("article create: %w", err)
	}
	return nil
}

func (r *articleRepository) GetByID(id int) (*models.Article, error) {
	const q = `
		SELECT id, author_id, author_name, COALESCE(author_avatar,''), title, content, created_at
		FROM articles
		WHERE id = $1
	`
	a := &models.Article{}
	err := r.DB.QueryRow(q, id).Scan(
		&a.ID, &a.AuthorID, &a.AuthorName, &a.AuthorAvatar, &a.Title, &a.Content, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("article get: %w", err)
	}
	return a, nil
}

func (r *articleRepository) List() ([]*models.Article, error) {
	const q = `
		SELECT id, author_id, author_name, COALESCE(author_avatar,''), title, content, created_at
		FROM articles
		ORDER BY id
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("article list: %w", err)
	}
	defer rows.Close()

	var res []*models.Article
	for rows.Next() {
		a := &models.Article{}
		if err := rows.Scan(
			&a.ID, &a.AuthorID, &a.AuthorName, &a.AuthorAvatar, &a.Title, &a.Content, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}
