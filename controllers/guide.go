package controllers

import (
	"errors"
	"io"
	"net/http"

	"summoners-school/analytics"
	"summoners-school/helpers"
	"summoners-school/middleware"
	"summoners-school/models"

	"github.com/gin-gonic/gin"
)

// DomainGuide names guides in analytics
const DomainGuide = "guide"

func (e *Env) AddGuide(c *gin.Context) {
	var data models.GuideInput

	if err := c.ShouldBindJSON(&data); err != nil {
		e.abort(c, bindError(err))
		return
	}

	guide, err := e.guideModel.CreateGuide(c.Request.Context(), data.Guide())
	if err != nil {
		e.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, guide)
}

func (e *Env) ListGuides(c *gin.Context) {
	guides, err := e.guideModel.ListGuides(c.Request.Context())
	if err != nil {
		e.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, guides)
}

func (e *Env) SearchGuides(c *gin.Context) {
	guides, err := e.guideModel.SearchGuides(c.Request.Context(), c.Query("name"))
	if err != nil {
		e.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, guides)
}

func (e *Env) GetGuide(c *gin.Context) {
	id, err := helpers.ValidateID(c.Param("id"))
	if err != nil {
		e.abort(c, err)
		return
	}

	guide, err := e.guideModel.GetGuide(c.Request.Context(), id)
	if err != nil {
		e.abort(c, err)
		return
	}

	e.tracker.SaveVisitor(c.Request.Context(), analytics.Visit{
		Domain:    DomainGuide,
		ObjectID:  id.Hex(),
		Client:    c.ClientIP(),
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusOK, guide)
}

// UpdateGuide applies the fields sent; a playlist replaces the stored one
func (e *Env) UpdateGuide(c *gin.Context) {
	id, err := helpers.ValidateID(c.Param("id"))
	if err != nil {
		e.abort(c, err)
		return
	}

	var data models.GuideUpdate
	if err = c.ShouldBindJSON(&data); err != nil && !errors.Is(err, io.EOF) {
		e.abort(c, bindError(err))
		return
	}

	guide, err := e.guideModel.UpdateGuide(c.Request.Context(), id, data)
	if err != nil {
		e.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, guide)
}

func (e *Env) DeleteGuide(c *gin.Context) {
	id, err := helpers.ValidateID(c.Param("id"))
	if err != nil {
		e.abort(c, err)
		return
	}

	if err = e.guideModel.DeleteGuide(c.Request.Context(), id); err != nil {
		e.abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
