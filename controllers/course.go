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

// DomainCourse names courses in analytics
const DomainCourse = "course"

// AddCourse creates a new course
func (e *Env) AddCourse(c *gin.Context) {
	var data models.CourseInput

	if err := c.ShouldBindJSON(&data); err != nil {
		e.abort(c, bindError(err))
		return
	}

	course, err := e.courseModel.CreateCourse(c.Request.Context(), data.Course())
	if err != nil {
		e.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// ListCourses returns all courses
func (e *Env) ListCourses(c *gin.Context) {
	courses, err := e.courseModel.ListCourses(c.Request.Context())
	if err != nil {
		e.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// SearchCourses returns the courses matching a part of their name
// format => http://localhost:8000/course/search?name=dar
func (e *Env) SearchCourses(c *gin.Context) {
	courses, err := e.courseModel.SearchCourses(c.Request.Context(), c.Query("name"))
	if err != nil {
		e.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GetCourse returns the specified course
func (e *Env) GetCourse(c *gin.Context) {
	id, err := helpers.ValidateID(c.Param("id"))
	if err != nil {
		e.abort(c, err)
		return
	}

	course, err := e.courseModel.GetCourse(c.Request.Context(), id)
	if err != nil {
		e.abort(c, err)
		return
	}

	e.tracker.SaveVisitor(c.Request.Context(), analytics.Visit{
		Domain:    DomainCourse,
		ObjectID:  id.Hex(),
		Client:    c.ClientIP(),
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusOK, course)
}

// UpdateCourse applies the fields sent and returns the course afterwards
func (e *Env) UpdateCourse(c *gin.Context) {
	id, err := helpers.ValidateID(c.Param("id"))
	if err != nil {
		e.abort(c, err)
		return
	}

	var data models.CourseUpdate
	// an empty body is treated like {}
	if err = c.ShouldBindJSON(&data); err != nil && !errors.Is(err, io.EOF) {
		e.abort(c, bindError(err))
		return
	}

	course, err := e.courseModel.UpdateCourse(c.Request.Context(), id, data)
	if err != nil {
		e.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// DeleteCourse removes the specified course
func (e *Env) DeleteCourse(c *gin.Context) {
	id, err := helpers.ValidateID(c.Param("id"))
	if err != nil {
		e.abort(c, err)
		return
	}

	if err = e.courseModel.DeleteCourse(c.Request.Context(), id); err != nil {
		e.abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
