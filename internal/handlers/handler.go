package handlers

import (
	"net/http"

	"blog_backend/internal/logger"
	"blog_backend/internal/service"
	"blog_backend/internal/storage"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, the upload store and logging.
type Handler struct {
	services *service.Service
	files    storage.FileStore
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, files storage.FileStore, log *logger.Logger) *Handler {
	return &Handler{services: services, files: files, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Identity endpoints
	router.POST("/signup", h.signUp)
	router.POST("/login", h.logIn)

	// Blog resource: reads are public, mutations require a bearer token
	blogs := router.Group("/blogs")
	{
		blogs.GET("", h.listBlogs)
		blogs.GET("/:id", h.getBlog)
		blogs.POST("", h.currentUserMiddleware, h.createBlog)
		blogs.PUT("/:id", h.currentUserMiddleware, h.updateBlog)
		blogs.DELETE("/:id", h.currentUserMiddleware, h.deleteBlog)
	}

	// Stored uploads
	router.GET("/uploads/:filename", h.serveUpload)

	// Contact form
	router.POST("/contact", h.submitContact)

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
