package devserver

import (
	"github.com/gin-gonic/gin"

	"zanara/internal/config"
)

// NewRouter assembles the dev API. Route shapes mirror the production API
// the client SDK talks to.
func NewRouter(cfg *config.Config, store Store) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	authHandler := NewAuthHandler(cfg, store)
	profileHandler := NewProfileHandler(cfg, store)
	mediaHandler := NewMediaHandler(cfg, store)
	connectionHandler := NewConnectionHandler(cfg, store)

	authRequired := AuthMiddleware(cfg, store)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authRequired, authHandler.Me)
	}

	profiles := r.Group("/profiles")
	{
		profiles.GET("/search", profileHandler.Search)

		me := profiles.Group("/me", authRequired)
		{
			me.GET("", profileHandler.GetMine)
			me.PUT("", profileHandler.UpdateMine)
			me.POST("/media/:kind", mediaHandler.Upload)
			me.DELETE("/media/:kind/:id", mediaHandler.Remove)
			me.PUT("/portfolio/order", mediaHandler.Reorder)
		}

		profiles.GET("/:id", profileHandler.GetByID)
	}

	connections := r.Group("/connections", authRequired)
	{
		connections.GET("/status/:id", connectionHandler.Status)
		connections.POST("/requests", connectionHandler.Request)
	}

	r.Static("/files", cfg.Storage.BasePath)

	return r
}
