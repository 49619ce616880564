package controllers

import "github.com/gin-gonic/gin"

// Register adds all API routes to router
func (e *Env) Register(router gin.IRouter) {
	router.GET("/health", e.Health)
	router.GET("/lookups", e.ListLookups)

	// course
	course := router.Group("/course")
	course.POST("/create", e.AddCourse)
	course.GET("/", e.ListCourses)
	course.GET("/search", e.SearchCourses)
	course.GET("/:id", e.GetCourse)
	course.PUT("/update/:id", e.UpdateCourse)
	course.DELETE("/delete/:id", e.DeleteCourse)

	// guide
	guide := router.Group("/guide")
	guide.POST("/create", e.AddGuide)
	guide.GET("/", e.ListGuides)
	guide.GET("/search", e.SearchGuides)
	guide.GET("/:id", e.GetGuide)
	guide.PUT("/update/:id", e.UpdateGuide)
	guide.DELETE("/delete/:id", e.DeleteGuide)

	// analytics
	router.GET("/stats/visits", e.GetVisits)

	// system tools
	router.GET("/monitor/requests/count", e.CountRequests)
}
