package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"yatube/api/middleware"
	"yatube/api/routes"
	"yatube/config"
	"yatube/db"
	"yatube/services"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	err := config.LoadConfig(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server...")

	if err = db.ConnectDB(); err != nil {
		panic("Failed to connect to the database: " + err.Error())
	}

	if err = db.EnsureMediaDir(); err != nil {
		panic("Failed to prepare media dir: " + err.Error())
	}

	// Redis нужен для кеша страниц, без него работаем на памяти процесса
	if err = services.InitRedis(); err != nil {
		log.Println("Warning: Redis unavailable, page cache falls back to local memory:", err)
	}

	// RabbitMQ нужен для push-уведомлений, без него шлем напрямую в WebSocket
	if err = services.InitRabbitMQ(); err != nil {
		log.Println("Warning: RabbitMQ unavailable, post events go directly to WebSocket:", err)
	} else {
		if err = services.StartPostEventConsumer(context.Background(), "post_events_ws"); err != nil {
			log.Println("Warning: failed to start post event consumer:", err)
		}
		defer services.CloseRabbitMQ()
	}

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.PrometheusMiddleware("yatube"))

	routes.PublicApi(router)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.Backend.Host, config.AppConfig.Backend.Port)
	if config.AppConfig.Backend.Port == 0 {
		addr = ":8080"
	}
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
