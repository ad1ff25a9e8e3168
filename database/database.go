package database

import (
	"context"
	"fmt"
	"log"

	"festival/config"
	"festival/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var REDIS *redis.Client

// InitDB opens the Postgres connection backing the remote document store
// and migrates the documents table. An error is returned instead of a
// fatal exit so the caller can start in offline mode when the remote
// store is unreachable.
func InitDB() error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=Asia/Kolkata",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	if err := DB.AutoMigrate(&models.Document{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Remote document store connected")
	return nil
}

// InitRedis connects the local cache store. The local cache is the
// durability anchor of every write, so failure here is fatal.
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	if err := REDIS.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect redis: ", err)
	}

	log.Println("Local cache store connected")
}
