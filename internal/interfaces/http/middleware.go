package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/recuento-api/pkg/logger"
)

const requestIDKey = "request_id"

// RequestID asigna un identificador a cada petición (respeta el X-Request-ID
// entrante) y lo expone en locals y en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDKey, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el identificador de la petición actual.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger registra cada petición con método, ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")

		return err
	}
}
