package main

import (
	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/config"
	"github.com/navacharity/charity-go/db"
	"github.com/navacharity/charity-go/middleware"
	"github.com/navacharity/charity-go/routes"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)
	r.Run(":" + config.ServerPort)
}
