package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"anonbox/auth"
	"anonbox/controllers"
	"anonbox/models"
	"anonbox/profiles"
	"anonbox/routes"
	"anonbox/storage"
)

func main() {
	cfg, err := models.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to setup database: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	hub := controllers.NewHub()
	go hub.Run()

	app := routes.App{
		Config:     cfg,
		Store:      store,
		Tokens:     auth.NewTokenService(cfg.SessionSecret, cfg.SessionDuration),
		Authorizer: auth.NewAuthorizer(cfg.AuthorizeURL, cfg.ClientTimeout),
		Profiles:   profiles.NewLoader(profiles.NewClient(cfg.UserServiceURL, cfg.ClientTimeout), cfg.ProfileCacheTTL),
		Hub:        hub,
	}

	r := gin.Default()
	routes.Register(r, app)

	log.Printf("Server starting on %s with session duration: %v", cfg.ListenAddr(), cfg.SessionDuration)
	if err := r.Run(cfg.ListenAddr()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
