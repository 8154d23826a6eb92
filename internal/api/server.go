package api

import (
	"net/http"

	"auctionary/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server wraps the REST API server
type Server struct {
	handler *Handler
	router  *gin.Engine
}

// NewServer creates a new API server
func NewServer(db *gorm.DB, staticDir string) *Server {
	handler := NewHandler(store.New(db))

	// gin.New() instead of gin.Default(): logging goes through logrus
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Authorization, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Public endpoints (no authentication required)
	router.POST("/users", handler.CreateUser)
	router.POST("/login", handler.Login)
	router.GET("/users/:id", handler.GetUserDetails)
	router.GET("/item/:id", handler.GetItemDetails)
	router.GET("/item/:id/bid", handler.GetBidHistory)
	router.GET("/item/:id/question", handler.GetQuestions)
	router.GET("/search", handler.Search)

	// Protected endpoints (require a session token)
	protected := router.Group("")
	protected.Use(handler.Auth())
	{
		protected.POST("/logout", handler.Logout)
		protected.POST("/item", handler.CreateItem)
		protected.POST("/item/:id/bid", handler.PlaceBid)
		protected.POST("/item/:id/question", handler.AskQuestion)
		protected.POST("/question/:question_id", handler.AnswerQuestion)
	}

	// Serve static files (web app) - must be last
	ServeStaticFiles(router, staticDir)

	return &Server{
		handler: handler,
		router:  router,
	}
}

// Router returns the underlying gin engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
