package models

import (
	"summoners-school/lookups"

	"github.com/go-playground/validator/v10"
)

// CourseType validates the "courseType" binding tag
var CourseType validator.Func = func(fl validator.FieldLevel) bool {
	return lookups.IsCourseType(fl.Field().String())
}

// RegisterValidators adds the custom binding tags of the models to v
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("courseType", CourseType)
}
