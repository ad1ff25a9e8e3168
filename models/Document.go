package models

import "time"

// Document is a single schema-less record inside a named collection.
// All festival entities are stored through this envelope, one row per
// document, with the payload kept as raw JSON.
type Document struct {
	Collection string    `gorm:"type:varchar(50);primaryKey" json:"collection"`
	DocID      string    `gorm:"type:varchar(100);primaryKey;column:doc_id" json:"id"`
	Data       []byte    `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
