package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"assettracker/internal/api"
	"assettracker/internal/config"
	"assettracker/internal/db"
	"assettracker/internal/service"
	"assettracker/internal/store"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	svc := service.New(store.New(gdb))

	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.AllowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Authorization", "Accept")
	r.Use(cors.New(corsCfg))
	r.Use(api.RequestID())

	srv := &api.Server{Service: svc}
	srv.RegisterRoutes(r)

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
