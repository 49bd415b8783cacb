package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mamacare-api/internal/service"
)

// NewRouter wires middlewares and routes into a Gin engine. The engine is
// returned rather than bound so hosting shims can mount it directly.
func NewRouter(
	logger *zap.Logger,
	accountH *AccountHandler,
	bookingH *BookingHandler,
	tokenSvc *service.TokenService,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(allowedOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Mamacare backend is running")
	})

	r.POST("/register", accountH.Register)
	r.POST("/login", accountH.Login)
	r.GET("/protected", BearerAuth(logger, tokenSvc), accountH.Protected)
	r.POST("/send-payment-email", bookingH.SendPaymentEmail)

	return r
}

// corsMiddleware allows only the configured origins, with credentials, and
// answers preflight OPTIONS requests.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// zapLoggerMiddleware creates a simple logging middleware with zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
