package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"falgoritma/cmd/fx/auth_fx"
	"falgoritma/cmd/fx/controllers_fx"
	"falgoritma/cmd/fx/credit_fx"
	"falgoritma/cmd/fx/db_fx"
	"falgoritma/cmd/fx/fortune_fx"
	"falgoritma/cmd/fx/subscription_fx"
	"falgoritma/cmd/fx/user_fx"
	"falgoritma/internal/api/controllers"
	"falgoritma/internal/config"
	"falgoritma/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		fx.Provide(config.NewCatalog),
		fx.Provide(config.NewPromptTemplate),

		db_fx.Module,
		auth_fx.Module,
		user_fx.Module,
		credit_fx.Module,
		subscription_fx.Module,
		fortune_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	creditController *controllers.CreditController,
	subscriptionController *controllers.SubscriptionController,
	fortuneController *controllers.FortuneController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, userController, creditController, subscriptionController, fortuneController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	creditController *controllers.CreditController,
	subscriptionController *controllers.SubscriptionController,
	fortuneController *controllers.FortuneController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/google", authController.GoogleAuth)
	authGroup.POST("/apple", authController.AppleAuth)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), authController.GetMe)

	usersGroup := r.Group("/users", middleware.JWTAuthMiddleware())
	usersGroup.POST("/onboarding", userController.CompleteOnboarding)
	usersGroup.GET("/profile", userController.GetProfile)
	usersGroup.PATCH("/profile", userController.UpdateProfile)

	creditsGroup := r.Group("/credits")
	creditsGroup.GET("/packages", creditController.GetPackages)
	creditsGroup.GET("/balance", middleware.JWTAuthMiddleware(), creditController.GetBalance)
	creditsGroup.POST("/simulate-purchase", middleware.JWTAuthMiddleware(), creditController.SimulatePurchase)

	subscriptionsGroup := r.Group("/subscriptions")
	subscriptionsGroup.GET("/plans", subscriptionController.GetPlans)
	subscriptionsGroup.POST("/subscribe", middleware.JWTAuthMiddleware(), subscriptionController.Subscribe)
	subscriptionsGroup.GET("/status", middleware.JWTAuthMiddleware(), subscriptionController.GetStatus)
	subscriptionsGroup.POST("/cancel", middleware.JWTAuthMiddleware(), subscriptionController.Cancel)

	fortunesGroup := r.Group("/fortunes", middleware.JWTAuthMiddleware())
	fortunesGroup.POST("", fortuneController.CreateFortune)
	fortunesGroup.GET("", fortuneController.ListFortunes)
	fortunesGroup.GET("/:id", fortuneController.GetFortuneById)
}
