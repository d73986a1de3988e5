package dto

import (
	"main/model"
	"time"
)

type CreateNoteRequest struct {
	Text    string `json:"text" binding:"required"`
	Private *bool  `json:"private"`
}

type UpdateNoteRequest struct {
	Text    string `json:"text" binding:"required"`
	Private *bool  `json:"private"`
}

type AssignTagsRequest struct {
	Tags []string `json:"tags" binding:"required"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	Private   bool      `json:"private"`
	Archived  bool      `json:"archived"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToNoteResponse(note *model.Note) NoteResponse {
	tags := note.TagIDs
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        note.ID,
		AuthorID:  note.AuthorID,
		Text:      note.Text,
		Private:   note.Private,
		Archived:  note.Archived,
		Tags:      tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
