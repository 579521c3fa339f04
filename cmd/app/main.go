package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripcheck/cmd/fx/db_fx"
	"tripcheck/cmd/fx/planner_fx"
	"tripcheck/cmd/fx/trips_fx"
	"tripcheck/cmd/fx/validation_fx"
	"tripcheck/internal/api/controllers"
	"tripcheck/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment: %v", err)
	}

	app := fx.New(
		db_fx.Module,
		planner_fx.Module,
		validation_fx.Module,
		trips_fx.Module,

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
	tripsController *controllers.TripsController,
	validationController *controllers.ValidationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripsController, validationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	validationController *controllers.ValidationController) {

	itineraries := r.Group("/itineraries")
	itineraries.POST("/validate", validationController.ValidateItineraryHandler)

	trips := r.Group("/trips")
	trips.Use(middleware.JWTAuthMiddleware())
	trips.POST("", tripsController.CreateTripHandler)
	trips.GET("", tripsController.ListTripsHandler)
	trips.GET("/:id", tripsController.GetTripHandler)
	trips.GET("/:id/report", tripsController.GetTripReportHandler)
	trips.DELETE("/:id", tripsController.DeleteTripHandler)
}
