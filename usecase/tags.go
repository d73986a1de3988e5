package usecase

import (
	"context"
	"fmt"
	"strings"

	"main/model"
	"main/utils"
)

type TagsService struct {
	TagsRepo TagsStore
}

// CreateTag registers a tag name. Tag names are unique; re-creating an
// existing name fails with ErrConflict.
func (svc *TagsService) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrValidation)
	}

	existing, err := svc.TagsRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: tag with name %s", ErrConflict, name)
	}

	tag := &model.Tag{
		ID:   utils.GenerateID(),
		Name: name,
	}
	if err := svc.TagsRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

func (svc *TagsService) GetTag(ctx context.Context, tagID string) (*model.Tag, error) {
	tag, err := svc.TagsRepo.FindByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, fmt.Errorf("%w: tag with id=%s", ErrNotFound, tagID)
	}
	return tag, nil
}

func (svc *TagsService) ListTags(ctx context.Context) ([]*model.Tag, error) {
	return svc.TagsRepo.FindAll(ctx)
}
