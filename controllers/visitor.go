package controllers

import (
	"net/http"

	"summoners-school/apperror"
	"summoners-school/helpers"

	"github.com/gin-gonic/gin"
)

// GetVisits returns how often a course or guide has been viewed
// http://localhost:8000/stats/visits?domain=course&id=604b6859f09f3aeecc9215c5
func (e *Env) GetVisits(c *gin.Context) {
	domain := c.Query("domain")
	if domain != DomainCourse && domain != DomainGuide {
		e.abort(c, apperror.BadRequest(apperror.MsgUnknownDomain.Error()))
		return
	}

	id, err := helpers.ValidateID(c.Query("id"))
	if err != nil {
		e.abort(c, err)
		return
	}

	visits, err := e.tracker.GetVisits(c.Request.Context(), domain, id.Hex())
	if err != nil {
		e.abort(c, helpers.WrapError(err, helpers.FuncName()))
		return
	}

	// wrap response into an object
	res := struct {
		Visits int64 `json:"visits"`
	}{visits}

	c.JSON(http.StatusOK, res)
}
