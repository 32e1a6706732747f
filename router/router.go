package router

import (
	"github.com/gin-gonic/gin"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	_ "marketscan/docs"
	"marketscan/middleware"
	"marketscan/router/api"
)

func Run(addr string) error {
	r := gin.New()
	// Allow cross-domain access, and those with nginx and other proxies can be closed
	r.Use(middleware.Cors())
	// Set up accessible routes
	api.Extra(r)
	api.NFT(r)
	api.Land(r)
	api.Wearable(r)
	api.Account(r)
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r.Run(addr)
}
