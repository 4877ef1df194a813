package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"galleria/internal/models"
)

type CollectionRepository interface {
	Create(collection *models.Collection) error
	GetByID(id int) (*models.Collection, error)
	List() ([]*models.Collection, error)
}

type ImageRepository interface {
	GetByIDs(ids []int) ([]*models.Image, error)
	GetByID(id int) (*models.Image, error)
}

type collectionRepository struct {
	DB *sql.DB
}

func NewCollectionRepository(db *sql.DB) CollectionRepository {
	return &collectionRepository{DB: db}
}

func (r *collectionRepository) Create(collection *models.Collection) error {
	const q = `
		INSERT INTO collections (name, description, ids_list)
		VALUES ($1, $2, $3)
		RETURNING id, create_date
	`
	err := r.DB.QueryRow(q,
		collection.Name,
		collection.Description,
		collection.IDsList,
	).Scan(&collection.ID, &collection.CreateDate)
	if err != nil {
		return fmt.Errorf("collection create: %w", err)
	}
	return nil
}

func (r *collectionRepository) GetByID(id int) (*models.Collection, error) {
	const q = `
		SELECT id, name, description, COALESCE(ids_list,'[]'), create_date
		FROM collections
		WHERE id = $1
	`
	c := &models.Collection{}
	err := r.DB.QueryRow(q, id).Scan(&c.ID, &c.Name, &c.Description, &c.IDsList, &c.CreateDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("collection get: %w", err)
	}
	return c, nil
}

func (r *collectionRepository) List() ([]*models.Collection, error) {
	const q = `
		SELECT id, name, description, COALESCE(ids_list,'[]'), create_date
		FROM collections
		ORDER BY id
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("collection list: %w", err)
	}
	defer rows.Close()

	var res []*models.Collection
	for rows.Next() {
		c := &models.Collection{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IDsList, &c.CreateDate); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

type imageRepository struct {
	DB *sql.DB
}

func NewImageRepository(db *sql.DB) ImageRepository {
	return &imageRepository{DB: db}
}

func (r *imageRepository) GetByIDs(ids []int) ([]*models.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const q = `
		SELECT id, title, COALESCE(image_url,''), COALESCE(artist,''), COALESCE(description,''),
			COALESCE(type_id,0), COALESCE(character_id,0), create_date, update_date
		FROM website_image_store
		WHERE id = ANY($1)
	`
	rows, err := r.DB.Query(q, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("image get by ids: %w", err)
	}
	defer rows.Close()

	var res []*models.Image
	for rows.Next() {
		img := &models.Image{}
		var updated sql.NullTime
		if err := rows.Scan(
			&img.ID, &img.Title, &img.ImageURL, &img.Artist, &img.Description,
			&img.TypeID, &img.CharacterID, &img.CreateDate, &updated,
		); err != nil {
			return nil, err
		}
		if updated.Valid {
			t := updated.Time
			img.UpdateDate = &t
		}
		res = append(res, img)
	}
	return res, rows.Err()
}

func (r *imageRepository) GetByID(id int) (*models.Image, error) {
	imgs, err := r.GetByIDs([]int{id})
	if err != nil {
		return nil, err
	}
	if len(imgs) == 0 {
		return nil, nil
	}
	return imgs[0], nil
}
