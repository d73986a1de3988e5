package usecase

import (
	"context"

	"main/model"
)

// Store interfaces are implemented by the repository package. Find methods
// return (nil, nil) when the entity does not exist; services turn that into
// ErrNotFound.

type NotesStore interface {
	Create(ctx context.Context, note *model.Note) error
	FindByID(ctx context.Context, noteID string) (*model.Note, error)
	FindVisible(ctx context.Context, userID string) ([]*model.Note, error)
	FindByAuthors(ctx context.Context, authorIDs []string) ([]*model.Note, error)
	FindFiltered(ctx context.Context, tagIDs, authorIDs []string) ([]*model.Note, error)
	UpdateContent(ctx context.Context, noteID, text string, private *bool) (int64, error)
	SetArchived(ctx context.Context, noteID string, archived bool) (int64, error)
	AddTags(ctx context.Context, noteID string, tagIDs []string) (int64, error)
}

type UserUpdate struct {
	Username *string
	Role     *string
	IsStaff  *bool
}

type UserStore interface {
	Add(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByUsernames(ctx context.Context, usernames []string) ([]*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, userID string, update UserUpdate) (int64, error)
	Delete(ctx context.Context, userID string) (int64, error)
	SetTwoFactor(ctx context.Context, userID, secret string, enabled bool, recoveryCodes []string) error
}

type TagsStore interface {
	Create(ctx context.Context, tag *model.Tag) error
	FindByID(ctx context.Context, tagID string) (*model.Tag, error)
	FindByIDs(ctx context.Context, tagIDs []string) ([]*model.Tag, error)
	FindByNames(ctx context.Context, names []string) ([]*model.Tag, error)
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	FindAll(ctx context.Context) ([]*model.Tag, error)
}
