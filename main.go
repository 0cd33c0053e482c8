// main.go

package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"karigar-backend/config"
	"karigar-backend/handlers"
	"karigar-backend/storage"
	"karigar-backend/store"
	"karigar-backend/utils"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := store.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("mongo: ", err)
	}

	uploader, err := storage.NewMinioUploader(
		cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
		cfg.MinioBucket, cfg.MinioUseSSL,
	)
	if err != nil {
		log.Fatal("minio: ", err)
	}

	api := handlers.New(db, uploader, utils.NewTokenService(cfg.JWTSecret))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "auth-token"},
		AllowCredentials: true,
	}))
	api.RegisterRoutes(r)

	log.Println("Server is Running on Port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
