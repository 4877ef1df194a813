package models

import "time"

// Collection groups images by id. IDsList is stored as a JSON array string
// ("[1,2,3]") and expanded into Images on read.
type Collection struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IDsList     string    `json:"ids_list"`
	CreateDate  time.Time `json:"create_date"`

	Images []*Image `json:"collection_list,omitempty"`
}

type Image struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	ImageURL    string     `json:"image_url"`
	Artist      string     `json:"artist"`
	Description string     `json:"description"`
	TypeID      int        `json:"type_id"`
	CharacterID int        `json:"character_id"`
	CreateDate  time.Time  `json:"create_date"`
	UpdateDate  *time.Time `json:"update_date,omitempty"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
