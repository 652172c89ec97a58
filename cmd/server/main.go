package main

import (
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/easyonboard/backend/config"
	"github.com/easyonboard/backend/internal/auth"
	"github.com/easyonboard/backend/internal/contentstore"
	"github.com/easyonboard/backend/internal/eventbus"
	"github.com/easyonboard/backend/internal/handler"
	"github.com/easyonboard/backend/internal/normalizer"
	"github.com/easyonboard/backend/internal/pkg/database"
	"github.com/easyonboard/backend/internal/repository"
	"github.com/easyonboard/backend/internal/router"
	"github.com/easyonboard/backend/internal/service"
	"github.com/easyonboard/backend/internal/subscriber"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Content.Dir, 0755); err != nil {
		log.Fatalf("Failed to create content directory: %v", err)
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化存储与领域服务
	store := contentstore.New(cfg.Content.Dir)
	progressRepo := repository.NewProgressRepository(db)
	bus := eventbus.NewTopicEventBus()
	topicService := service.NewTopicService(store, normalizer.New(store), progressRepo, bus)

	// 订阅主题事件，删除主题时同步清理进度记录
	subscriber.NewTopicEventSubscriber(progressRepo).Register(bus)

	// 初始化认证
	provider, err := auth.NewProvider(&cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize auth provider: %v", err)
	}
	sessions := auth.NewSessionStore()

	// 初始化 Handler
	topicHandler := handler.NewTopicHandler(topicService)
	authHandler := handler.NewAuthHandler(provider, sessions)

	// 设置路由
	r := router.Setup(cfg, topicHandler, authHandler, sessions)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
