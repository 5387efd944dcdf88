package middleware

import (
	"net/http"
	"time"

	"cashback-rewards/internal/core/domain"
	"cashback-rewards/internal/core/ports"
	"cashback-rewards/pkg/apperror"
	"cashback-rewards/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderAPIKey carries the merchant's API key.
	HeaderAPIKey = "x-api-key"

	// Context keys
	CtxMerchantKey = "merchant"
)

// maxRequestIDLen bounds client supplied request ids echoed back in logs and headers.
const maxRequestIDLen = 64

// RequestID assigns every request an id, reusing the caller's X-Request-ID when sane.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(response.HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.New().String()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(response.HeaderRequestID, id)
		c.Next()
	}
}

// APIKeyAuth resolves the merchant behind the x-api-key header.
// Pipeline: header present -> merchant known -> merchant active.
func APIKeyAuth(merchantRepo ports.MerchantRepository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(HeaderAPIKey)
		if apiKey == "" {
			response.Error(c, apperror.ErrAPIKeyRequired())
			c.Abort()
			return
		}

		merchant, err := merchantRepo.GetByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch merchant")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		if merchant == nil {
			response.Error(c, apperror.ErrInvalidAPIKey())
			c.Abort()
			return
		}
		if !merchant.IsActive {
			response.Error(c, apperror.ErrMerchantInactive())
			c.Abort()
			return
		}

		c.Set(CtxMerchantKey, merchant)
		c.Next()
	}
}

// MerchantFromContext returns the merchant stored by APIKeyAuth.
func MerchantFromContext(c *gin.Context) (*domain.Merchant, bool) {
	v, ok := c.Get(CtxMerchantKey)
	if !ok {
		return nil, false
	}
	m, ok := v.(*domain.Merchant)
	return m, ok && m != nil
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(response.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
					ErrorCode: "SYS_001",
					Message:   "Internal server error",
					RequestID: c.GetString(response.RequestIDKey),
				})
			}
		}()
		c.Next()
	}
}

// RequestObserver records per-route request counts and latency.
type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

// Metrics reports every request to obs, labelled by route template.
func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
