package main

import (
	"summoners-school/config"
	"summoners-school/controllers"
	"summoners-school/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newRouter builds the engine with the middleware chain and all routes
func newRouter(cfg config.Config, env *controllers.Env, logger *zap.Logger) *gin.Engine {
	if cfg.AppEnv == config.EnvPRD {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORSMiddleware(cfg.Origins()),
	)

	env.Register(router)

	return router
}
