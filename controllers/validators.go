package controllers

import (
	"errors"

	"summoners-school/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidators registers the custom binding tags on gin's validator
func InitValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return models.RegisterValidators(v)
}
