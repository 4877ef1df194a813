package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"galleria/internal/models"
)

type TagRepository interface {
	GetOrCreate(name string) (*models.Tag, error)
	Attach(imageID, tagID int) error
	ListByImage(imageID int) ([]string, error)
}

type tagRepository struct {
	DB *sql.DB
}

func NewTagRepository(db *sql.DB) TagRepository {
	return &tagRepository{DB: db}
}

func (r *tagRepository) GetOrCreate(name string) (*models.Tag, error) {
	t := &models.Tag{Name: name}
	err := r.DB.QueryRow(`SELECT id FROM tags WHERE name = $1`, name).Scan(&t.ID)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tag get: %w", err)
	}
	// races with a concurrent insert resolve to the existing row
	const q = `
		INSERT INTO tags (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	if err := r.DB.QueryRow(q, name).Scan(&t.ID); err != nil {
		return nil, fmt.Errorf("tag create: %w", err)
	}
	return t, nil
}

func (r *tagRepository) Attach(imageID, tagID int) error {
	const q = `
		INSERT INTO image_tag_associations (image_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (image_id, tag_id) DO NOTHING
	`
	if _, err := r.DB.Exec(q, imageID, tagID); err != nil {
		return fmt.Errorf("tag attach: %w", err)
	}
	return nil
}

func (r *tagRepository) ListByImage(imageID int) ([]string, error) {
	const q = `
		SELECT t.name
		FROM tags t
		JOIN image_tag_associations a ON a.tag_id = t.id
		WHERE a.image_id = $1
		ORDER BY t.name
	`
	rows, err := r.DB.Query(q, imageID)
	if err != nil {
		return nil, fmt.Errorf("tag list: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
