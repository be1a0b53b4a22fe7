package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hanz-sales/internal/service"
)

// NewRouter configura el router de Gin con middlewares y todas las rutas.
func NewRouter(
	logger *zap.Logger,
	jwtServ *service.JWTService,
	authH *AuthHandler,
	categoryH *CategoryHandler,
	regionH *RegionHandler,
	customerH *CustomerHandler,
	productH *ProductHandler,
	saleH *SaleHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery dual-formato y seleccion de formato.
	r.Use(
		zapLoggerMiddleware(logger),
		gin.CustomRecovery(func(c *gin.Context, err any) {
			logger.Error("panic recovered", zap.Any("error", err))
			writeError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
		}),
		FormatMiddleware(),
	)

	r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "Not found")
	})

	r.GET("/health", authH.Health)

	auth := r.Group("/auth")
	auth.POST("/login", authH.Login)

	api := r.Group("/api", JWTAuthMiddleware(jwtServ))

	categories := api.Group("/categories")
	categories.GET("", categoryH.List)
	categories.POST("", categoryH.Create)
	categories.GET("/:id", categoryH.Get)
	categories.PUT("/:id", categoryH.Update)
	categories.DELETE("/:id", categoryH.Delete)

	regions := api.Group("/regions")
	regions.GET("", regionH.List)
	regions.POST("", regionH.Create)
	regions.GET("/:id", regionH.Get)
	regions.PUT("/:id", regionH.Update)
	regions.DELETE("/:id", regionH.Delete)

	customers := api.Group("/customers")
	customers.GET("", customerH.List)
	customers.POST("", customerH.Create)
	customers.GET("/:id", customerH.Get)
	customers.PUT("/:id", customerH.Update)
	customers.DELETE("/:id", customerH.Delete)

	products := api.Group("/products")
	products.GET("", productH.List)
	products.POST("", productH.Create)
	products.GET("/:id", productH.Get)
	products.PUT("/:id", productH.Update)
	products.DELETE("/:id", productH.Delete)

	sales := api.Group("/sales")
	sales.GET("", saleH.List)
	sales.POST("", saleH.Create)
	// La ruta estatica /search se registra antes que /:id y tiene prioridad.
	sales.GET("/search", saleH.Search)
	sales.GET("/:id", saleH.Get)
	sales.PUT("/:id", saleH.Update)
	sales.DELETE("/:id", saleH.Delete)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
