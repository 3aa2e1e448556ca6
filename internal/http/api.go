package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"inventory-api/internal/repository"
	"inventory-api/internal/service"
	"inventory-api/internal/storage"
)

// LivenessMessage is the body served on GET /.
const LivenessMessage = "inventory api is running"

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users      service.UserService
	categories service.CategoryService
	products   service.ProductService
	exports    service.ExportService
	tokens     TokenVerifier
	logger     logrus.FieldLogger
}

func NewHandler(
	users service.UserService,
	categories service.CategoryService,
	products service.ProductService,
	exports service.ExportService,
	tokens TokenVerifier,
	logger logrus.FieldLogger,
) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		users:      users,
		categories: categories,
		products:   products,
		exports:    exports,
		tokens:     tokens,
		logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestLogger(h.logger))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, LivenessMessage)
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	api := router.Group("/api")
	{
		users := api.Group("/users")
		users.POST("/register", h.register)
		users.POST("/login", h.login)
	}

	protected := api.Group("", h.authenticate())
	{
		protected.GET("/categories", h.listCategories)
		protected.GET("/categories/:id", h.getCategory)
		protected.POST("/categories", h.createCategory)
		protected.PUT("/categories/:id", h.updateCategory)
		protected.DELETE("/categories/:id", h.deleteCategory)

		protected.GET("/products", h.listProducts)
		protected.GET("/products/:id", h.getProduct)
		protected.POST("/products", h.createProduct)
		protected.PUT("/products/:id", h.updateProduct)
		protected.DELETE("/products/:id", h.deleteProduct)

		protected.POST("/exports", h.createExport)
		protected.GET("/exports", h.listExports)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// respondError maps service and repository errors onto status codes.
// notFound is the message used for repository.ErrNotFound.
func (h *Handler) respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if !errors.Is(err, storage.ErrNotConfigured) {
			h.logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
