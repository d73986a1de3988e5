package model

import (
	"time"
)

// MaxNoteTextLength bounds the note body.
const MaxNoteTextLength = 255

type Note struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Text      string    `bson:"text" json:"text" binding:"required"`
	Private   bool      `bson:"private" json:"private"`
	Archived  bool      `bson:"archived" json:"archived"`
	TagIDs    []string  `bson:"tag_ids,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
