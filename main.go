package main

import (
	"fmt"
	"log"

	"vipshop-backend/configs"
	"vipshop-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedConfig(); err != nil {
		log.Fatalf("seed config failed: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
