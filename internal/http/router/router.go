package router

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"workstack.io/tracker/internal/http/handler"
	"workstack.io/tracker/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services, schema graphql.Schema) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	gqlHandler := handler.NewGraphQLHandler(schema)
	router.POST("/graphql", gqlHandler.Execute)

	v1 := router.Group("/api/v1")
	{
		adminHandler := handler.NewAdminHandler(services.Query())
		AdminRouter(v1.Group("/admin"), adminHandler)
	}
}
