package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Ashraf-Khalifa/digital-new/internal/config"
	"github.com/Ashraf-Khalifa/digital-new/internal/db"
	"github.com/Ashraf-Khalifa/digital-new/internal/routes"
	"github.com/Ashraf-Khalifa/digital-new/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	database, err := db.Open(cfg.DbDsn)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, store.New(database), cfg)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
