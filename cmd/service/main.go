package main

import (
	"os"

	"github.com/D4sh12/e-commerce-api/config"
	_ "github.com/D4sh12/e-commerce-api/docs"
	"github.com/D4sh12/e-commerce-api/internal/database"
	"github.com/D4sh12/e-commerce-api/internal/hashing"
	"github.com/D4sh12/e-commerce-api/internal/logger"
	"github.com/D4sh12/e-commerce-api/internal/producer"
	"github.com/D4sh12/e-commerce-api/internal/repository"
	"github.com/D4sh12/e-commerce-api/internal/service"
	"github.com/D4sh12/e-commerce-api/internal/token"
	httptransport "github.com/D4sh12/e-commerce-api/internal/transport/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title E-Commerce API
// @Version 1.0
// @Description API магазина: каталог товаров, заказы, аккаунты пользователей
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	hasher := hashing.NewBcrypt(10)
	tokens := token.NewHSProvider(cfg.JWT.AccessSecret, cfg.JWT.Issuer, cfg.JWT.Audience)

	var emails service.EmailProducer
	if len(cfg.KafkaBrokers) > 0 {
		p := producer.NewEmailProducer(producer.Config{
			Brokers:      cfg.KafkaBrokers,
			Topic:        cfg.KafkaTopicEmail,
			WriteTimeout: cfg.KafkaWriteTimeout,
		})
		defer p.Close()
		emails = p
	} else {
		log.Warn("Kafka не сконфигурирован, письма отправляться не будут")
	}

	userSvc := service.NewUserService(repos, hasher, tokens, emails, cfg.JWT.AccessTTL, cfg.JWT.ActivationTTL, log)
	orderSvc := service.NewOrderService(repos, service.NewOrderValidator(repos.Products))
	productSvc := service.NewProductService(repos)

	r := httptransport.Router(userSvc, orderSvc, productSvc, tokens, log)

	log.Info("Запуск HTTP сервера", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to run http server", zap.Error(err))
	}
}
