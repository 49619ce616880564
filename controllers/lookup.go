package controllers

import (
	"net/http"

	"summoners-school/lookups"

	"github.com/gin-gonic/gin"
)

// ListLookups returns the code domains (course types) for client forms
func (e *Env) ListLookups(c *gin.Context) {
	c.JSON(http.StatusOK, lookups.All())
}
