package handler

import (
	"net/http"

	"dishlist/backend/internal/auth"
	"dishlist/backend/internal/cache"
	"dishlist/backend/internal/friendship"
	"dishlist/backend/internal/middleware"
	"dishlist/backend/internal/repository"
	"dishlist/backend/internal/restaurant"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// RouterConfig holds what the HTTP surface needs.
type RouterConfig struct {
	DB        *gorm.DB
	JWTSecret string
	TagCache  cache.TagCache
	Logger    *logrus.Logger
}

// NewRouter wires services and handlers and registers every route.
func NewRouter(cfg RouterConfig) *gin.Engine {
	store := repository.NewStore(cfg.DB)
	friends := friendship.NewService(store, cfg.Logger)
	restaurants := restaurant.NewService(store, cfg.TagCache, cfg.Logger)

	friendHandler := NewFriendHandler(friends, cfg.Logger)
	userHandler := NewUserHandler(store, friends, cfg.Logger)
	restaurantHandler := NewRestaurantHandler(restaurants, cfg.Logger)
	tagHandler := NewTagHandler(restaurants, cfg.Logger)

	requireAuth := []gin.HandlerFunc{
		auth.AuthMiddleware(cfg.JWTSecret),
		auth.RequireKnownUser(store.Users, cfg.Logger),
	}
	optionalAuth := auth.OptionalAuthMiddleware(cfg.JWTSecret)

	router := gin.New()
	router.Use(middleware.RequestLogger(cfg.Logger), gin.Recovery())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Friendship routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(requireAuth...)
		{
			friendRoutes.GET("", friendHandler.GetFriends)
			friendRoutes.POST("/request", friendHandler.SendRequest)
			friendRoutes.POST("/accept", friendHandler.AcceptRequest)
			friendRoutes.POST("/decline", friendHandler.DeclineRequest)
			friendRoutes.POST("/cancel", friendHandler.CancelRequest)
			friendRoutes.POST("/remove", friendHandler.RemoveFriend)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(requireAuth...)
		{
			userRoutes.GET("/me", userHandler.GetMe)
			userRoutes.GET("/search", userHandler.SearchUsers)
		}

		// Restaurant reads are open to anonymous viewers, writes are not
		restaurantRoutes := apiV1.Group("/restaurants")
		{
			restaurantRoutes.GET("", optionalAuth, restaurantHandler.ListRestaurants)
			restaurantRoutes.GET("/stats", optionalAuth, restaurantHandler.GetRestaurantStats) // Must be before /:id
			restaurantRoutes.GET("/:id", optionalAuth, restaurantHandler.GetRestaurant)

			writes := restaurantRoutes.Group("")
			writes.Use(requireAuth...)
			writes.POST("", restaurantHandler.CreateRestaurant)
			writes.PUT("/:id", restaurantHandler.UpdateRestaurant)
			writes.DELETE("/:id", restaurantHandler.DeleteRestaurant)
		}

		apiV1.GET("/locations", optionalAuth, restaurantHandler.GetLocations)
		apiV1.GET("/tags", tagHandler.GetTags)
	}

	return router
}
