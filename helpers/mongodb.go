package helpers

import (
	"strings"

	"summoners-school/apperror"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidID reports whether id is a canonical ObjectID: 24 lowercase hex characters
func IsValidID(id string) bool {
	if len(id) != 24 || strings.ToLower(id) != id {
		return false
	}
	return primitive.IsValidObjectID(id)
}

// ValidateID converts a path parameter to an ObjectID or fails with BadRequest
// (runs before any database access)
func ValidateID(id string) (primitive.ObjectID, error) {
	if !IsValidID(id) {
		return primitive.NilObjectID, apperror.BadRequest(apperror.MsgInvalidID.Error())
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperror.BadRequest(apperror.MsgInvalidID.Error())
	}
	return oid, nil
}
