package server

import (
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) SetUpRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestId())
	router.Use(Logger())
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "ok",
		})
	})
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	// Serve static files from dashboard/build
	router.Static("/static", "./dashboard/build/static")
	router.NoRoute(func(c *gin.Context) {
		// API requests should 404
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}
		// All other routes go to index.html for client-side routing
		c.File("./dashboard/build/index.html")
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	apiV1 := router.Group("/api/v1")
	s.SetUpApiV1Router(apiV1)

	return router
}

func (s *Server) SetUpApiV1Router(apiV1 *gin.RouterGroup) {
	apiV1.POST("/login", s.handleLogin)
	apiV1.POST("/logout", s.handleLogout)

	v1Authed := apiV1.Group("")
	v1Authed.Use(TrySetUserToContext(s.conf.JwtSecret))
	v1Authed.Use(NeedAuth(s.conf.JwtSecret == ""))

	{
		v1Animals := v1Authed.Group("/animals")

		v1Animals.GET("/:animal_id/events", s.handleAnimalEvents)
		v1Animals.GET("/:animal_id/summary", s.handleAnimalSummary)
		v1Animals.GET("/:animal_id/heatmap", s.handleAnimalHeatmap)
		v1Animals.GET("/:animal_id/report", s.handleAnimalReport)
		v1Animals.GET("/:animal_id/report.csv", s.handleAnimalReportCSV)
		v1Animals.GET("/:animal_id/trends", s.handleAnimalTrends)
	}

	v1Authed.GET("/live/events", s.handleLiveEvents)
	v1Authed.GET("/media/url", s.handleMediaURL)
	v1Authed.POST("/chat", s.handleChat)
}
