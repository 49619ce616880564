package models

import (
	"context"
	"errors"
	"regexp"

	"summoners-school/apperror"
	"summoners-school/helpers"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentStore holds the collection access shared by all resource models.
// T is the document type as it is read back from the collection.
type documentStore[T any] struct {
	collection *mongo.Collection
	resource   resource
}

// create inserts doc (without _id, assigned by the driver) and reads it back
func (s documentStore[T]) create(ctx context.Context, doc interface{}) (*T, error) {
	res, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var created T
	err = s.collection.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	return &created, nil
}

// find returns every document matching filter in natural order (never nil)
func (s documentStore[T]) find(ctx context.Context, filter interface{}) ([]T, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}
	if docs == nil {
		docs = []T{}
	}

	return docs, nil
}

func (s documentStore[T]) list(ctx context.Context) ([]T, error) {
	return s.find(ctx, bson.D{})
}

// nameFilter matches name as a case-insensitive substring (LIKE %name%)
func nameFilter(name string) bson.D {
	return bson.D{
		{Key: "name", Value: primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}},
	}
}

func (s documentStore[T]) searchByName(ctx context.Context, name string) ([]T, error) {
	return s.find(ctx, nameFilter(name))
}

// get fails with "<Resource> Not Found" when nothing matches
func (s documentStore[T]) get(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.resource.errNotFound()
		}
		return nil, helpers.WrapError(err, helpers.FuncName())
	}
	return &doc, nil
}

// update applies set atomically and returns the document after the write.
// An empty set is a read: the current document is returned unchanged.
func (s documentStore[T]) update(ctx context.Context, id primitive.ObjectID, set bson.D) (*T, error) {
	if len(set) == 0 {
		doc, err := s.get(ctx, id)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindNotFound {
				return nil, s.resource.errIDNotFound(id)
			}
			return nil, err
		}
		return doc, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.resource.errIDNotFound(id)
		}
		return nil, helpers.WrapError(err, helpers.FuncName())
	}
	return &doc, nil
}

// delete removes exactly one document or fails with NotFound
func (s documentStore[T]) delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return helpers.WrapError(err, helpers.FuncName())
	}
	if res.DeletedCount == 0 {
		return s.resource.errIDNotFound(id)
	}
	return nil
}
