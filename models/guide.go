package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GuideCollection is the collection holding guide documents
const GuideCollection = "guide"

// Guide is a champion guide with a playlist of videos
type Guide struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Owner       Owner              `json:"owner" bson:"owner"`
	Champion    string             `json:"champion" bson:"champion"`
	Thumbnail   *string            `json:"thumbnail" bson:"thumbnail"`
	Playlist    map[string]string  `json:"playlist" bson:"playlist"` // label -> URL
	Description *string            `json:"description" bson:"description"`
	Content     *string            `json:"content" bson:"content"`
}

// GuideInput is the create request body
type GuideInput struct {
	Name        *string           `json:"name" binding:"required"`
	Owner       *OwnerInput       `json:"owner" binding:"required"`
	Champion    *string           `json:"champion" binding:"required"`
	Thumbnail   *string           `json:"thumbnail"`
	Playlist    map[string]string `json:"playlist" binding:"required"`
	Description *string           `json:"description"`
	Content     *string           `json:"content"`
}

// Guide converts a bound request into a record
func (in GuideInput) Guide() Guide {
	return Guide{
		Name:        *in.Name,
		Owner:       Owner{ID: *in.Owner.ID, Name: *in.Owner.Name},
		Champion:    *in.Champion,
		Thumbnail:   in.Thumbnail,
		Playlist:    in.Playlist,
		Description: in.Description,
		Content:     in.Content,
	}
}

// GuideUpdate is a partial update: nil fields are left unchanged,
// a present playlist replaces the stored one
type GuideUpdate struct {
	Name        *string           `json:"name"`
	Owner       *OwnerUpdate      `json:"owner"`
	Champion    *string           `json:"champion"`
	Thumbnail   *string           `json:"thumbnail"`
	Playlist    map[string]string `json:"playlist"`
	Description *string           `json:"description"`
	Content     *string           `json:"content"`
}

// Fields returns the $set document of all present fields
func (u GuideUpdate) Fields() bson.D {
	set := bson.D{}
	if u.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *u.Name})
	}
	set = u.Owner.set(set)
	if u.Champion != nil {
		set = append(set, bson.E{Key: "champion", Value: *u.Champion})
	}
	if u.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *u.Thumbnail})
	}
	if u.Playlist != nil {
		set = append(set, bson.E{Key: "playlist", Value: u.Playlist})
	}
	if u.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *u.Description})
	}
	if u.Content != nil {
		set = append(set, bson.E{Key: "content", Value: *u.Content})
	}
	return set
}

// GuideModel provides access to the guide collection
type GuideModel struct {
	Collection *mongo.Collection
}

// NewGuideModel binds the model to the guide collection of db
func NewGuideModel(db *mongo.Database) GuideModel {
	return GuideModel{Collection: db.Collection(GuideCollection)}
}

func (m GuideModel) store() documentStore[Guide] {
	return documentStore[Guide]{collection: m.Collection, resource: guideResource}
}

// CreateGuide inserts a guide and returns it as stored
func (m GuideModel) CreateGuide(ctx context.Context, guide Guide) (*Guide, error) {
	guide.ID = primitive.NilObjectID
	if guide.Playlist == nil {
		guide.Playlist = map[string]string{}
	}
	return m.store().create(ctx, &guide)
}

func (m GuideModel) ListGuides(ctx context.Context) ([]Guide, error) {
	return m.store().list(ctx)
}

func (m GuideModel) GetGuide(ctx context.Context, id primitive.ObjectID) (*Guide, error) {
	return m.store().get(ctx, id)
}

// UpdateGuide applies the present fields of upd and returns the guide afterwards
func (m GuideModel) UpdateGuide(ctx context.Context, id primitive.ObjectID, upd GuideUpdate) (*Guide, error) {
	return m.store().update(ctx, id, upd.Fields())
}

func (m GuideModel) DeleteGuide(ctx context.Context, id primitive.ObjectID) error {
	return m.store().delete(ctx, id)
}

// SearchGuides lists guides whose name contains name (case-insensitive)
func (m GuideModel) SearchGuides(ctx context.Context, name string) ([]Guide, error) {
	return m.store().searchByName(ctx, name)
}
