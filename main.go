package main

import (
	"context"
	"log"
	"time"

	"festival/config"
	"festival/database"
	"festival/middleware"
	"festival/migration"
	v1 "festival/routes/v1"
	"festival/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Festival Portal API
// @version 1.0
// @description Admin and student portal API for the festival, backed by a
// @description remote document store with a local cache fallback.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	// The local cache is the durability anchor; without it the service
	// cannot run at all
	database.InitRedis()

	ctx := context.Background()
	local := storage.NewRedisLocal(database.REDIS)
	if err := storage.SeedLocalDefaults(ctx, local); err != nil {
		log.Fatalf("Failed to seed local cache: %v", err)
	}

	// The remote store is optional at startup: the service comes up
	// offline and the monitor brings it online once Postgres is reachable
	online := false
	var remote storage.RemoteStore
	if err := database.InitDB(); err != nil {
		log.Printf("Remote store unavailable, starting offline: %v", err)
		unreachable := storage.NewMemoryRemote()
		unreachable.FailAll = true
		remote = unreachable
	} else {
		remote = storage.NewGormRemote(database.DB)
		online = true
	}

	storage.Store = storage.NewHybrid(remote, local, online)
	go storage.Store.RunMonitor(ctx, 30*time.Second)

	if online {
		migrator := migration.NewMigrator(remote, local)
		if _, err := migrator.RunFullMigration(ctx, false); err != nil {
			log.Printf("Startup migration failed: %v", err)
		}
	} else {
		go retryRemote(ctx, local)
	}

	r := gin.Default()

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	v1.Register(r)

	middleware.UpdateSystemMetrics()

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// retryRemote keeps trying to reach Postgres after an offline start. Once
// connected it swaps in the real remote store, runs the migration and
// marks the service online, which triggers the local-to-remote sync.
func retryRemote(ctx context.Context, local storage.LocalStore) {
	for {
		time.Sleep(30 * time.Second)
		if err := database.InitDB(); err != nil {
			continue
		}

		remote := storage.NewGormRemote(database.DB)
		storage.Store.SetRemote(remote)

		migrator := migration.NewMigrator(remote, local)
		if _, err := migrator.RunFullMigration(ctx, false); err != nil {
			log.Printf("Migration after reconnect failed: %v", err)
		}
		storage.Store.MarkOnline(ctx)
		log.Println("Remote store connected")
		return
	}
}
