package repository

import (
	"context"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TagsRepo struct {
	MongoCollection *mongo.Collection
}

func GetTagsRepo(client *mongo.Client) *TagsRepo {
	return &TagsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("tags"),
	}
}

func (r *TagsRepo) Create(ctx context.Context, tag *model.Tag) error {
	timer := utils.TrackDBOperation("insert", "tags")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, tag)
	if err != nil {
		utils.TrackError("database", "tag_creation_failed")
	}
	return err
}

func (r *TagsRepo) FindByID(ctx context.Context, tagID string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": tagID}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "tag_lookup_error")
		return nil, err
	}
	return &tag, nil
}

func (r *TagsRepo) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"name": name}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "tag_lookup_error")
		return nil, err
	}
	return &tag, nil
}

func (r *TagsRepo) FindByIDs(ctx context.Context, tagIDs []string) ([]*model.Tag, error) {
	return r.findAll(ctx, bson.M{"_id": bson.M{"$in": tagIDs}})
}

func (r *TagsRepo) FindByNames(ctx context.Context, names []string) ([]*model.Tag, error) {
	return r.findAll(ctx, bson.M{"name": bson.M{"$in": names}})
}

func (r *TagsRepo) FindAll(ctx context.Context) ([]*model.Tag, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *TagsRepo) findAll(ctx context.Context, filter bson.M) ([]*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "tag_query_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []*model.Tag{}
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
