package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jrpvbrasil/portal-api/internal/application/boletos"
	"github.com/jrpvbrasil/portal-api/internal/application/dto"
	"github.com/jrpvbrasil/portal-api/internal/domain"
	"github.com/jrpvbrasil/portal-api/pkg/logger"
)

// BoletoHandler atende a consulta de boletos e a segunda via.
type BoletoHandler struct {
	consulta   *boletos.ConsultarUseCase
	segundaVia *boletos.SegundaViaUseCase
	log        *logger.Logger
}

// NewBoletoHandler constrói o handler de boletos.
func NewBoletoHandler(consulta *boletos.ConsultarUseCase, segundaVia *boletos.SegundaViaUseCase, log *logger.Logger) *BoletoHandler {
	return &BoletoHandler{consulta: consulta, segundaVia: segundaVia, log: log}
}

// Consultar godoc
// @Summary      Consultar boletos do associado
// @Tags         boletos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsultarBoletosRequest  true  "cpf ou cpf_associado; período opcional em dd/mm/aaaa"
// @Success      200   {object}  dto.ConsultaSucesso
// @Failure      400   {object}  dto.RespostaErro
// @Failure      500   {object}  dto.RespostaErro
// @Router       /api/jrpv/boletos/consultar [post]
func (h *BoletoHandler) Consultar(c *fiber.Ctx) error {
	var in dto.ConsultarBoletosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.RespostaErro{Success: false, Error: domain.ErrCPFObrigatorio.Error()})
	}

	data, err := h.consulta.Consultar(c.UserContext(), in)
	if err != nil {
		return h.responderErro(c, err)
	}
	return c.JSON(dto.ConsultaSucesso{Success: true, Data: data})
}

// SegundaVia godoc
// @Summary      Gerar segunda via de boleto em PDF
// @Tags         boletos
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.SegundaViaRequest  true  "cpf e codigo_boleto"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.RespostaErro
// @Failure      404   {object}  dto.RespostaErro
// @Failure      500   {object}  dto.RespostaErro
// @Router       /api/jrpv/boletos/segunda-via [post]
func (h *BoletoHandler) SegundaVia(c *fiber.Ctx) error {
	var in dto.SegundaViaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.RespostaErro{Success: false, Error: domain.ErrCPFObrigatorio.Error()})
	}

	pdf, err := h.segundaVia.Gerar(c.UserContext(), in)
	if err != nil {
		return h.responderErro(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="segunda-via.pdf"`)
	return c.Send(pdf)
}

// responderErro converte erros de domínio para o envelope uniforme
// {success:false, error}. Só a ausência de CPF vira 400; falhas de
// autenticação/consulta no upstream viram 500 com mensagem genérica
// (o corpo cru do upstream fica apenas no log do adaptador).
func (h *BoletoHandler) responderErro(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrCPFObrigatorio):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrBoletoNaoEncontrado):
		status = fiber.StatusNotFound
	}
	if status == fiber.StatusInternalServerError {
		h.log.Error().Err(err).Str("rota", c.Path()).Msg("erro na consulta de boletos")
	}
	return c.Status(status).JSON(dto.RespostaErro{Success: false, Error: err.Error()})
}
