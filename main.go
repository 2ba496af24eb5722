package main

import (
	"fmt"
	"log"

	"crumella-backend/configs"
	"crumella-backend/middlewares"
	"crumella-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedVouchers(); err != nil {
		log.Fatalf("seed vouchers failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())

	// serve proof-of-payment uploads
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
