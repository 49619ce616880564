package models

import (
	"context"

	"summoners-school/lookups"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CourseCollection is the collection holding course documents
const CourseCollection = "course"

// Owner is embedded in courses and guides
type Owner struct {
	ID   int64  `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Course is the "interface" used for client communication
type Course struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	Rating float64            `json:"rating" bson:"rating"` // 2 decimals
	Owner  Owner              `json:"owner" bson:"owner"`
	View   int64              `json:"view" bson:"view"`
	Price  float64            `json:"price" bson:"price"` // 2 decimals
	Type   string             `json:"type" bson:"type"`
}

// OwnerInput is the owner part of a create request (all fields required)
type OwnerInput struct {
	ID   *int64  `json:"id" binding:"required"`
	Name *string `json:"name" binding:"required"`
}

// CourseInput is the create request body; pointers tell "missing" from zero values
type CourseInput struct {
	Name   *string     `json:"name" binding:"required"`
	Rating *float64    `json:"rating" binding:"required"`
	Owner  *OwnerInput `json:"owner" binding:"required"`
	View   *int64      `json:"view" binding:"required"`
	Price  *float64    `json:"price" binding:"required"`
	Type   *string     `json:"type" binding:"required,courseType"`
}

// Course converts a bound request into a record (caller ensures required fields)
func (in CourseInput) Course() Course {
	return Course{
		Name:   *in.Name,
		Rating: *in.Rating,
		Owner:  Owner{ID: *in.Owner.ID, Name: *in.Owner.Name},
		View:   *in.View,
		Price:  *in.Price,
		Type:   *in.Type,
	}
}

// OwnerUpdate is the owner part of a partial update
type OwnerUpdate struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// set appends owner.<field> for every sub-field that is present
func (o *OwnerUpdate) set(set bson.D) bson.D {
	if o == nil {
		return set
	}
	if o.ID != nil {
		set = append(set, bson.E{Key: "owner.id", Value: *o.ID})
	}
	if o.Name != nil {
		set = append(set, bson.E{Key: "owner.name", Value: *o.Name})
	}
	return set
}

// CourseUpdate is a partial update: nil fields are left unchanged
type CourseUpdate struct {
	Name   *string      `json:"name"`
	Rating *float64     `json:"rating"`
	Owner  *OwnerUpdate `json:"owner"`
	View   *int64       `json:"view"`
	Price  *float64     `json:"price"`
	Type   *string      `json:"type" binding:"omitempty,courseType"`
}

// Validate checks the enumerated fields of the update
func (u CourseUpdate) Validate() error {
	if u.Type != nil && !lookups.IsCourseType(*u.Type) {
		return ErrInvalidCourseType
	}
	return nil
}

// Fields returns the $set document of all present fields, rounded where required
func (u CourseUpdate) Fields() bson.D {
	set := bson.D{}
	if u.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *u.Name})
	}
	if u.Rating != nil {
		set = append(set, bson.E{Key: "rating", Value: Round2(*u.Rating)})
	}
	set = u.Owner.set(set)
	if u.View != nil {
		set = append(set, bson.E{Key: "view", Value: *u.View})
	}
	if u.Price != nil {
		set = append(set, bson.E{Key: "price", Value: Round2(*u.Price)})
	}
	if u.Type != nil {
		set = append(set, bson.E{Key: "type", Value: *u.Type})
	}
	return set
}

// CourseModel provides the logic to the interface and access to the database
type CourseModel struct {
	Collection *mongo.Collection
}

// NewCourseModel binds the model to the course collection of db
func NewCourseModel(db *mongo.Database) CourseModel {
	return CourseModel{Collection: db.Collection(CourseCollection)}
}

func (m CourseModel) store() documentStore[Course] {
	return documentStore[Course]{collection: m.Collection, resource: courseResource}
}

// Validate checks given values and rounds the decimals (immutable)
func (m CourseModel) Validate(course Course) (*Course, error) {
	if !lookups.IsCourseType(course.Type) {
		return nil, ErrInvalidCourseType
	}

	cleaned := course
	cleaned.ID = primitive.NilObjectID // assigned by storage
	cleaned.Rating = Round2(course.Rating)
	cleaned.Price = Round2(course.Price)

	return &cleaned, nil
}

// CreateCourse inserts a course and returns it as stored
func (m CourseModel) CreateCourse(ctx context.Context, course Course) (*Course, error) {
	cleaned, err := m.Validate(course)
	if err != nil {
		return nil, err
	}
	return m.store().create(ctx, cleaned)
}

// ListCourses returns all courses
func (m CourseModel) ListCourses(ctx context.Context) ([]Course, error) {
	return m.store().list(ctx)
}

// GetCourse returns one course
func (m CourseModel) GetCourse(ctx context.Context, id primitive.ObjectID) (*Course, error) {
	return m.store().get(ctx, id)
}

// UpdateCourse applies the present fields of upd and returns the course afterwards
func (m CourseModel) UpdateCourse(ctx context.Context, id primitive.ObjectID, upd CourseUpdate) (*Course, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	return m.store().update(ctx, id, upd.Fields())
}

// DeleteCourse removes a course for good
func (m CourseModel) DeleteCourse(ctx context.Context, id primitive.ObjectID) error {
	return m.store().delete(ctx, id)
}

// SearchCourses lists courses whose name contains name (case-insensitive)
func (m CourseModel) SearchCourses(ctx context.Context, name string) ([]Course, error) {
	return m.store().searchByName(ctx, name)
}
