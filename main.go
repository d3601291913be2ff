package main

import (
	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"partmatch/config"
	"partmatch/database"
	"partmatch/handlers"
	"partmatch/matching"
	"partmatch/middleware"
	"partmatch/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warnf(".env file not found, using system environment variables")
	}

	cfg := config.Load()

	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to create database connection: %v", err)
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	synonyms := matching.DefaultSynonyms()
	if len(cfg.SynonymPairs) > 0 {
		synonyms = matching.BuildSynonymMap(cfg.SynonymPairs...)
	}
	log.Infof("Brand synonym map built with %d entries", len(synonyms))

	catalogService := services.NewCatalogService(db, synonyms)
	h := handlers.NewHandlers(catalogService)

	r := gin.Default()

	// CORS middleware for Gin
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Health endpoint (public)
	r.GET("/health", h.HealthHandler)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.POST("/parts", h.IndexPart)
		protected.DELETE("/parts/:seq", h.DeletePart)
		protected.GET("/parts/match", h.Match)
		protected.GET("/parts/lookup", h.Lookup)
		protected.GET("/brands/resolve", h.ResolveBrand)
	}

	log.Infof("Starting part matching service on %s:%s", cfg.Host, cfg.Port)
	r.Run(cfg.Host + ":" + cfg.Port)
}
