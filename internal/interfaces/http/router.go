package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrpvbrasil/portal-api/internal/application/boletos"
	"github.com/jrpvbrasil/portal-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	Consulta   *boletos.ConsultarUseCase
	SegundaVia *boletos.SegundaViaUseCase
	Log        *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/jrpv")

	boletoHandler := NewBoletoHandler(deps.Consulta, deps.SegundaVia, deps.Log)
	grupo := api.Group("/boletos")
	grupo.Post("/consultar", boletoHandler.Consultar)
	grupo.Post("/segunda-via", boletoHandler.SegundaVia)
}
