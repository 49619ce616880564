package models

import (
	"fmt"

	"summoners-school/apperror"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resource names used in not-found messages ("course", "Course")
type resource struct {
	name  string
	title string
}

var (
	courseResource = resource{name: "course", title: "Course"}
	guideResource  = resource{name: "guide", title: "Guide"}
)

// errNotFound is returned by lookups ("Course Not Found")
func (r resource) errNotFound() error {
	return apperror.NotFound(r.title + " Not Found")
}

// errIDNotFound is returned by update and delete ("course <id> not found")
func (r resource) errIDNotFound(id primitive.ObjectID) error {
	return apperror.NotFound(fmt.Sprintf("%s %s not found", r.name, id.Hex()))
}

// ErrInvalidCourseType is returned when type is outside the closed set
var ErrInvalidCourseType = apperror.BadRequest("type must be one of: recommended, popular, new, nothing")
