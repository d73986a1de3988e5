package handler

import (
	"context"

	"main/model"
	"main/usecase"
)

// In-memory stores backing the HTTP tests.

type memNotesStore struct {
	notes map[string]*model.Note
}

func newMemNotesStore() *memNotesStore {
	return &memNotesStore{notes: make(map[string]*model.Note)}
}

func (s *memNotesStore) Create(_ context.Context, note *model.Note) error {
	cp := *note
	s.notes[note.ID] = &cp
	return nil
}

func (s *memNotesStore) FindByID(_ context.Context, noteID string) (*model.Note, error) {
	note, ok := s.notes[noteID]
	if !ok {
		return nil, nil
	}
	cp := *note
	return &cp, nil
}

func (s *memNotesStore) FindVisible(_ context.Context, userID string) ([]*model.Note, error) {
	var notes []*model.Note
	for _, note := range s.notes {
		if note.Archived {
			continue
		}
		if note.AuthorID == userID || !note.Private {
			cp := *note
			notes = append(notes, &cp)
		}
	}
	return notes, nil
}

func (s *memNotesStore) FindByAuthors(_ context.Context, authorIDs []string) ([]*model.Note, error) {
	var notes []*model.Note
	for _, note := range s.notes {
		if containsStr(authorIDs, note.AuthorID) {
			cp := *note
			notes = append(notes, &cp)
		}
	}
	return notes, nil
}

func (s *memNotesStore) FindFiltered(_ context.Context, tagIDs, authorIDs []string) ([]*model.Note, error) {
	var notes []*model.Note
	for _, note := range s.notes {
		if note.Archived {
			continue
		}
		if len(tagIDs) > 0 && !tagIntersect(note.TagIDs, tagIDs) {
			continue
		}
		if len(authorIDs) > 0 && !containsStr(authorIDs, note.AuthorID) {
			continue
		}
		cp := *note
		notes = append(notes, &cp)
	}
	return notes, nil
}

func (s *memNotesStore) UpdateContent(_ context.Context, noteID, text string, private *bool) (int64, error) {
	note, ok := s.notes[noteID]
	if !ok {
		return 0, nil
	}
	note.Text = text
	if private != nil {
		note.Private = *private
	}
	return 1, nil
}

func (s *memNotesStore) SetArchived(_ context.Context, noteID string, archived bool) (int64, error) {
	note, ok := s.notes[noteID]
	if !ok {
		return 0, nil
	}
	note.Archived = archived
	return 1, nil
}

func (s *memNotesStore) AddTags(_ context.Context, noteID string, tagIDs []string) (int64, error) {
	note, ok := s.notes[noteID]
	if !ok {
		return 0, nil
	}
	for _, id := range tagIDs {
		if !containsStr(note.TagIDs, id) {
			note.TagIDs = append(note.TagIDs, id)
		}
	}
	return 1, nil
}

type memUsersStore struct {
	users map[string]*model.User
}

func newMemUsersStore() *memUsersStore {
	return &memUsersStore{users: make(map[string]*model.User)}
}

func (s *memUsersStore) Add(_ context.Context, user *model.User) error {
	cp := *user
	s.users[user.UserID] = &cp
	return nil
}

func (s *memUsersStore) FindByID(_ context.Context, userID string) (*model.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (s *memUsersStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memUsersStore) FindByUsernames(_ context.Context, usernames []string) ([]*model.User, error) {
	var users []*model.User
	for _, user := range s.users {
		if containsStr(usernames, user.Username) {
			cp := *user
			users = append(users, &cp)
		}
	}
	return users, nil
}

func (s *memUsersStore) FindAll(_ context.Context) ([]*model.User, error) {
	var users []*model.User
	for _, user := range s.users {
		cp := *user
		users = append(users, &cp)
	}
	return users, nil
}

func (s *memUsersStore) Update(_ context.Context, userID string, update usecase.UserUpdate) (int64, error) {
	user, ok := s.users[userID]
	if !ok {
		return 0, nil
	}
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.IsStaff != nil {
		user.IsStaff = *update.IsStaff
	}
	return 1, nil
}

func (s *memUsersStore) Delete(_ context.Context, userID string) (int64, error) {
	if _, ok := s.users[userID]; !ok {
		return 0, nil
	}
	delete(s.users, userID)
	return 1, nil
}

func (s *memUsersStore) SetTwoFactor(_ context.Context, userID, secret string, enabled bool, recoveryCodes []string) error {
	user, ok := s.users[userID]
	if !ok {
		return nil
	}
	user.TwoFactorSecret = secret
	user.TwoFactorEnabled = enabled
	user.RecoveryCodes = recoveryCodes
	return nil
}

type memTagsStore struct {
	tags map[string]*model.Tag
}

func newMemTagsStore() *memTagsStore {
	return &memTagsStore{tags: make(map[string]*model.Tag)}
}

func (s *memTagsStore) Create(_ context.Context, tag *model.Tag) error {
	cp := *tag
	s.tags[tag.ID] = &cp
	return nil
}

func (s *memTagsStore) FindByID(_ context.Context, tagID string) (*model.Tag, error) {
	tag, ok := s.tags[tagID]
	if !ok {
		return nil, nil
	}
	cp := *tag
	return &cp, nil
}

func (s *memTagsStore) FindByName(_ context.Context, name string) (*model.Tag, error) {
	for _, tag := range s.tags {
		if tag.Name == name {
			cp := *tag
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memTagsStore) FindByIDs(_ context.Context, tagIDs []string) ([]*model.Tag, error) {
	var tags []*model.Tag
	for _, id := range tagIDs {
		if tag, ok := s.tags[id]; ok {
			cp := *tag
			tags = append(tags, &cp)
		}
	}
	return tags, nil
}

func (s *memTagsStore) FindByNames(_ context.Context, names []string) ([]*model.Tag, error) {
	var tags []*model.Tag
	for _, tag := range s.tags {
		if containsStr(names, tag.Name) {
			cp := *tag
			tags = append(tags, &cp)
		}
	}
	return tags, nil
}

func (s *memTagsStore) FindAll(_ context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	for _, tag := range s.tags {
		cp := *tag
		tags = append(tags, &cp)
	}
	return tags, nil
}

func containsStr(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func tagIntersect(a, b []string) bool {
	for _, item := range a {
		if containsStr(b, item) {
			return true
		}
	}
	return false
}
