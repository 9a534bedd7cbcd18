package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestIDKey clave en c.Locals donde el middleware requestid deja el ID.
const RequestIDKey = "requestid"

// FiberMiddleware registra una línea por petición con método, ruta, estado y latencia.
// Respuestas 5xx se registran en error y 4xx en warn.
func FiberMiddleware(l *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Deja que el ErrorHandler escriba el estado antes de registrarlo.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = l.Error()
		case status >= fiber.StatusBadRequest:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		if rid, ok := c.Locals(RequestIDKey).(string); ok && rid != "" {
			ev = ev.Str("request_id", rid)
		}
		if chainErr != nil {
			ev = ev.Err(chainErr)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return nil
	}
}
