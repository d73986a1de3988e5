package repository

import (
	"context"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

func (r *NotesRepo) Create(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
	}
	return err
}

// FindByID returns (nil, nil) when the note does not exist. Archived notes
// are returned too; the soft-delete flag never hides a row from id lookup.
func (r *NotesRepo) FindByID(ctx context.Context, noteID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// FindVisible returns the user's own notes plus non-private notes of other
// users, newest first. Archived notes are excluded.
func (r *NotesRepo) FindVisible(ctx context.Context, userID string) ([]*model.Note, error) {
	filter := bson.M{
		"archived": false,
		"$or": []bson.M{
			{"author_id": userID},
			{"private": false},
		},
	}
	return r.findAll(ctx, filter)
}

// FindByAuthors returns all notes of the given authors, including archived
// and private ones.
func (r *NotesRepo) FindByAuthors(ctx context.Context, authorIDs []string) ([]*model.Note, error) {
	return r.findAll(ctx, bson.M{"author_id": bson.M{"$in": authorIDs}})
}

// FindFiltered selects non-archived notes matching the given tag ids and
// author ids. Both conditions apply when both are present.
func (r *NotesRepo) FindFiltered(ctx context.Context, tagIDs, authorIDs []string) ([]*model.Note, error) {
	filter := bson.M{"archived": false}
	if len(tagIDs) > 0 {
		filter["tag_ids"] = bson.M{"$in": tagIDs}
	}
	if len(authorIDs) > 0 {
		filter["author_id"] = bson.M{"$in": authorIDs}
	}
	return r.findAll(ctx, filter)
}

func (r *NotesRepo) findAll(ctx context.Context, filter bson.M) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_query_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NotesRepo) UpdateContent(ctx context.Context, noteID, text string, private *bool) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	set := bson.M{
		"text":       text,
		"updated_at": time.Now(),
	}
	if private != nil {
		set["private"] = *private
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": noteID}, bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *NotesRepo) SetArchived(ctx context.Context, noteID string, archived bool) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": noteID},
		bson.M{"$set": bson.M{
			"archived":   archived,
			"updated_at": time.Now(),
		}})
	if err != nil {
		utils.TrackError("database", "note_archive_failed")
		return 0, err
	}
	return result.MatchedCount, nil
}

// AddTags appends tag ids to the note's tag set. $addToSet keeps the set
// free of duplicates, so re-adding an id is a no-op.
func (r *NotesRepo) AddTags(ctx context.Context, noteID string, tagIDs []string) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": noteID},
		bson.M{
			"$addToSet": bson.M{"tag_ids": bson.M{"$each": tagIDs}},
			"$set":      bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		utils.TrackError("database", "note_tag_update_failed")
		return 0, err
	}
	return result.MatchedCount, nil
}
