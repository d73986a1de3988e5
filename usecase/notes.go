package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"main/model"
	"main/utils"
)

type NotesService struct {
	NotesRepo NotesStore
	TagsRepo  TagsStore
	UsersRepo UserStore
}

func (svc *NotesService) validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: text is required", ErrValidation)
	}
	if len(text) > model.MaxNoteTextLength {
		return "", fmt.Errorf("%w: text exceeds %d characters", ErrValidation, model.MaxNoteTextLength)
	}
	return text, nil
}

// CreateNote stores a new note owned by the caller. Notes are private
// unless the request says otherwise.
func (svc *NotesService) CreateNote(ctx context.Context, authorID, text string, private *bool) (*model.Note, error) {
	text, err := svc.validateText(text)
	if err != nil {
		return nil, err
	}

	note := &model.Note{
		ID:       utils.GenerateID(),
		AuthorID: authorID,
		Text:     text,
		Private:  true,
		Archived: false,
	}
	if private != nil {
		note.Private = *private
	}

	if err := svc.NotesRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// GetNote returns a note to its author only, regardless of the note's
// visibility flag.
func (svc *NotesService) GetNote(ctx context.Context, noteID, callerID string) (*model.Note, error) {
	note, err := svc.NotesRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: note with id=%s", ErrNotFound, noteID)
	}
	if note.AuthorID != callerID {
		return nil, fmt.Errorf("%w: note belongs to another user", ErrForbidden)
	}
	return note, nil
}

// ListNotes returns the caller's own notes plus non-private notes of other
// users. Archived notes stay out of listings.
func (svc *NotesService) ListNotes(ctx context.Context, callerID string) ([]*model.Note, error) {
	return svc.NotesRepo.FindVisible(ctx, callerID)
}

func (svc *NotesService) UpdateNote(ctx context.Context, noteID, callerID, text string, private *bool) (*model.Note, error) {
	note, err := svc.NotesRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: note with id=%s", ErrNotFound, noteID)
	}
	if note.AuthorID != callerID {
		return nil, fmt.Errorf("%w: only the author can edit a note", ErrForbidden)
	}

	text, err = svc.validateText(text)
	if err != nil {
		return nil, err
	}

	if _, err := svc.NotesRepo.UpdateContent(ctx, noteID, text, private); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	note.Text = text
	if private != nil {
		note.Private = *private
	}
	note.UpdatedAt = time.Now()
	utils.TrackNoteOperation("update")
	return note, nil
}

// ArchiveNote is the "delete" operation: it flips the archived flag and
// nothing else. The row stays queryable by id, so a later restore works.
func (svc *NotesService) ArchiveNote(ctx context.Context, noteID, callerID string) error {
	note, err := svc.NotesRepo.FindByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note with id=%s", ErrNotFound, noteID)
	}
	if note.AuthorID != callerID {
		return fmt.Errorf("%w: only the author can archive a note", ErrForbidden)
	}

	if _, err := svc.NotesRepo.SetArchived(ctx, noteID, true); err != nil {
		return fmt.Errorf("failed to archive note: %w", err)
	}
	utils.TrackNoteOperation("archive")
	return nil
}

// RestoreNote clears the archived flag. Ownership is checked id-to-id.
func (svc *NotesService) RestoreNote(ctx context.Context, noteID, callerID string) error {
	note, err := svc.NotesRepo.FindByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note with id=%s", ErrNotFound, noteID)
	}
	if note.AuthorID != callerID {
		return fmt.Errorf("%w: only the author can restore a note", ErrForbidden)
	}

	if _, err := svc.NotesRepo.SetArchived(ctx, noteID, false); err != nil {
		return fmt.Errorf("failed to restore note: %w", err)
	}
	utils.TrackNoteOperation("restore")
	return nil
}

// AssignTags attaches tags to a note. Every tag id is resolved before the
// single write happens, so a missing tag leaves the note untouched. The
// repository add is set-based, so repeated ids never create a second
// association.
func (svc *NotesService) AssignTags(ctx context.Context, noteID string, tagIDs []string) error {
	note, err := svc.NotesRepo.FindByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note with id=%s", ErrNotFound, noteID)
	}

	unique := dedupe(tagIDs)
	if len(unique) == 0 {
		return fmt.Errorf("%w: at least one tag id is required", ErrValidation)
	}

	tags, err := svc.TagsRepo.FindByIDs(ctx, unique)
	if err != nil {
		return err
	}
	if len(tags) != len(unique) {
		found := make(map[string]bool, len(tags))
		for _, tag := range tags {
			found[tag.ID] = true
		}
		for _, id := range unique {
			if !found[id] {
				return fmt.Errorf("%w: tag with id=%s", ErrNotFound, id)
			}
		}
	}

	if _, err := svc.NotesRepo.AddTags(ctx, noteID, unique); err != nil {
		return fmt.Errorf("failed to assign tags: %w", err)
	}
	return nil
}

// FilterNotes selects notes by tag names and/or author usernames. When both
// filters are present the result is their intersection. A request with
// neither filter is rejected.
func (svc *NotesService) FilterNotes(ctx context.Context, tagNames, usernames []string) ([]*model.Note, error) {
	if len(tagNames) == 0 && len(usernames) == 0 {
		return nil, fmt.Errorf("%w: at least one of tags or username is required", ErrValidation)
	}

	var tagIDs []string
	if len(tagNames) > 0 {
		tags, err := svc.TagsRepo.FindByNames(ctx, tagNames)
		if err != nil {
			return nil, err
		}
		if len(tags) == 0 {
			return []*model.Note{}, nil
		}
		for _, tag := range tags {
			tagIDs = append(tagIDs, tag.ID)
		}
	}

	var authorIDs []string
	if len(usernames) > 0 {
		users, err := svc.UsersRepo.FindByUsernames(ctx, usernames)
		if err != nil {
			return nil, err
		}
		if len(users) == 0 {
			return []*model.Note{}, nil
		}
		for _, user := range users {
			authorIDs = append(authorIDs, user.UserID)
		}
	}

	return svc.NotesRepo.FindFiltered(ctx, tagIDs, authorIDs)
}

// NotesByUser returns every note of the given user regardless of
// visibility. This is a debug-style read; the user must exist.
func (svc *NotesService) NotesByUser(ctx context.Context, userID string) ([]*model.Note, error) {
	user, err := svc.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user with id=%s", ErrNotFound, userID)
	}
	return svc.NotesRepo.FindByAuthors(ctx, []string{userID})
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}
