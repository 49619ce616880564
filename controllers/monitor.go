package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health reports whether the storage answers
func (e *Env) Health(c *gin.Context) {
	if e.ping != nil {
		if err := e.ping(c.Request.Context()); err != nil {
			e.logger.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CountRequests returns the number of clients in the refresh registry
func (e *Env) CountRequests(c *gin.Context) {
	count := 0
	if e.clients != nil {
		count = e.clients.Count()
	}

	c.JSON(http.StatusOK, gin.H{"clients": count})
}
