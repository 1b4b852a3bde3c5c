package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jrpvbrasil/portal-api/pkg/logger"
)

// chave em Locals com o id da requisição, disponível para os handlers.
const RequestIDKey = "request_id"

// RequestLogger atribui um request id e emite uma linha de acesso estruturada
// ao final de cada requisição.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.New().String()
		c.Locals(RequestIDKey, id)
		inicio := time.Now()

		err := c.Next()

		log.Info().
			Str("request_id", id).
			Str("metodo", c.Method()).
			Str("rota", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duracao", time.Since(inicio)).
			Msg("requisição atendida")
		return err
	}
}
