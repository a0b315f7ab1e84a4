package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/interfaces/httpserver/middlewares"
)

// middlewaresChain returns the default middleware stack in execution order.
func middlewaresChain(log zerolog.Logger) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middlewares.RequestID(),
		middlewares.CORSMiddleware(),
		middlewares.MetricsMiddleware(),
		middlewares.LoggingMiddleware(log),
	}
}
