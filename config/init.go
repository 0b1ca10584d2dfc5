package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

func InitApp() (*gin.Engine, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	c := cron.New()

	return router, c, nil
}

func initComponents() error {
	LoadEnv()

	ConnectDB()

	if err := MigrateDB(); err != nil {
		return fmt.Errorf("failed to migrate tables: %v", err)
	}

	if err := SeedData(DB); err != nil {
		return fmt.Errorf("failed to seed data: %v", err)
	}

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		// Không có Redis vẫn chạy được, dashboard sẽ tính trực tiếp từ DB
		log.Printf("Warning: failed to connect to Redis, caching disabled: %v", err)
		RedisClient = nil
	}

	log.Println("All components initialized successfully")
	return nil
}
