package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"pet_diary_server/internal/config"
	miniodao "pet_diary_server/internal/dao/minio"
	dao "pet_diary_server/internal/dao/mysql"
	myredis "pet_diary_server/internal/dao/redis"
	"pet_diary_server/internal/handler"
	"pet_diary_server/internal/https_server"
	"pet_diary_server/internal/infrastructure/logger"
	"pet_diary_server/internal/service"
	"pet_diary_server/internal/service/notify"
	"pet_diary_server/pkg/util/jwt"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库
	repos := dao.Init()
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 初始化成功")

	// 6. 初始化 MinIO 对象存储
	store, err := miniodao.Init()
	if err != nil {
		zap.L().Fatal("MinIO 初始化失败", zap.Error(err))
	}
	zap.L().Info("MinIO 初始化成功")

	// 7. 初始化通知网关和事件代理
	// channel 模式为单机内存分发，kafka 模式支持多实例部署
	gateway := notify.NewGateway()
	var broker notify.EventBroker
	if conf.NotificationConfig.Mode == "kafka" {
		broker = notify.NewKafkaBroker(gateway)
	} else {
		broker = notify.NewChannelBroker(gateway)
	}
	broker.Start()
	zap.L().Info("通知服务初始化成功", zap.String("mode", conf.NotificationConfig.Mode))

	// 8. 初始化 Service 层（依赖注入）
	service.InitServices(repos, myredis.GetCacheService(), store, broker)
	zap.L().Info("Service 层初始化成功")

	// 9. 初始化参数校验翻译器和 HTTP 服务器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}
	handlers := handler.NewHandlers(service.Svc, gateway)
	engine := https_server.Init(handlers)

	// 10. 启动服务
	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务启动成功", zap.String("host", conf.MainConfig.Host), zap.Int("port", conf.MainConfig.Port))

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	broker.Close()
	zap.L().Info("服务器已关闭")
}
