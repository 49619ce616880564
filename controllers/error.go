package controllers

import (
	"errors"
	"net/http"
	"strings"

	"summoners-school/apperror"
	"summoners-school/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse is the standardized error structure which may be returned by any API
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HandleError encodes the std ErrorResponse
func HandleError(err error) (httpStatus int, apiError ErrorResponse) {
	switch apperror.KindOf(err) {
	case apperror.KindBadRequest:
		return http.StatusBadRequest, ErrorResponse{Detail: apperror.Detail(err)}
	case apperror.KindNotFound:
		return http.StatusNotFound, ErrorResponse{Detail: apperror.Detail(err)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Detail: apperror.MsgInternalError.Error()}
	}
}

// abort answers with the mapped error; server errors are logged with their cause
func (e *Env) abort(c *gin.Context, err error) {
	status, apiError := HandleError(err)
	if status == http.StatusInternalServerError {
		e.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, apiError)
}

// bindError turns a binding failure into a BadRequest with a readable detail
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.BadRequest(apperror.MsgInvalidJSON.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fieldName(fe)+" is required")
		case "courseType":
			msgs = append(msgs, models.ErrInvalidCourseType.Error())
		default:
			msgs = append(msgs, fieldName(fe)+" is invalid")
		}
	}
	return apperror.BadRequest(strings.Join(msgs, "; "))
}

// fieldName strips the struct name: "CourseInput.Owner.ID" -> "owner.id"
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}
