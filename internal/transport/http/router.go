package http

import (
	"github.com/D4sh12/e-commerce-api/internal/service"
	"github.com/D4sh12/e-commerce-api/internal/transport/http/handlers"
	"github.com/D4sh12/e-commerce-api/internal/transport/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func Router(
	users service.UserService,
	orders service.OrderService,
	products service.ProductService,
	tokens service.TokenProvider,
	log *zap.Logger,
) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	userHandler := handlers.NewUserHandler(users, log)
	orderHandler := handlers.NewOrderHandler(orders, log)
	productHandler := handlers.NewProductHandler(products, log)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", userHandler.Signup)
		auth.POST("/login", userHandler.Login)
		auth.GET("/activate/:token", userHandler.Activate)
		auth.POST("/verify-code", userHandler.VerifyCode)
		auth.POST("/resend-code", userHandler.ResendCode)
		auth.POST("/reset-password", userHandler.RequestPasswordReset)
		auth.POST("/reset-password/verify-code", userHandler.ConfirmPasswordReset)
	}

	r.GET("/products", productHandler.List)
	r.GET("/products/:id", productHandler.Get)

	ordersGroup := r.Group("/orders", middleware.AuthRequired(tokens, log))
	{
		ordersGroup.GET("", orderHandler.List)
		ordersGroup.POST("", orderHandler.Create)
		ordersGroup.GET("/:id", orderHandler.Get)
		ordersGroup.DELETE("/:id", orderHandler.Delete)
	}

	return r
}
