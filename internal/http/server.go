package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lsgame/roomsvc/internal/http/handlers"
	"github.com/lsgame/roomsvc/internal/http/middleware"
	"github.com/lsgame/roomsvc/internal/infrastructure/auth"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/lsgame/roomsvc/internal/infrastructure/metrics"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router        *gin.Engine
	jwtService    auth.JWTService
	roomHandler   *handlers.RoomHandler
	gameHandler   *handlers.GameHandler
	playerHandler *handlers.PlayerHandler
	userHandler   *handlers.UserHandler
	errorHandler  *middleware.ErrorHandler
	metrics       *metrics.Metrics
	port          string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	roomHandler *handlers.RoomHandler,
	gameHandler *handlers.GameHandler,
	playerHandler *handlers.PlayerHandler,
	userHandler *handlers.UserHandler,
	errorHandler *middleware.ErrorHandler,
	metrics *metrics.Metrics,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:        router,
		jwtService:    jwtService,
		roomHandler:   roomHandler,
		gameHandler:   gameHandler,
		playerHandler: playerHandler,
		userHandler:   userHandler,
		errorHandler:  errorHandler,
		metrics:       metrics,
		port:          port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			roomRoutes := protected.Group("/rooms")
			{
				roomRoutes.POST("", s.roomHandler.Create)
				roomRoutes.DELETE("", s.roomHandler.Delete)
				roomRoutes.GET("/current", s.roomHandler.GetCurrent)
				roomRoutes.POST("/leave", s.roomHandler.Leave)
				roomRoutes.POST("/transfer", s.roomHandler.Transfer)
				roomRoutes.GET("/:host_id", s.roomHandler.Get)
				roomRoutes.POST("/:host_id/join", s.roomHandler.Join)
			}

			gameRoutes := protected.Group("/games")
			{
				gameRoutes.POST("/start", s.gameHandler.Start)
				gameRoutes.POST("/finish", s.gameHandler.Finish)
			}

			playerRoutes := protected.Group("/players")
			{
				playerRoutes.GET("/me", s.playerHandler.GetMe)
				playerRoutes.POST("/me/use-item", s.playerHandler.UseItem)
				playerRoutes.POST("/:user_id/eliminate", s.playerHandler.Eliminate)
			}

			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/me", s.userHandler.GetMe)
				userRoutes.GET("/:user_id", s.userHandler.Get)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
