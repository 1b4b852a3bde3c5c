package enhancer

import (
	"context"
	"regexp"

	"golang.org/x/sync/semaphore"

	"github.com/jrpvbrasil/portal-api/internal/application/dto"
	"github.com/jrpvbrasil/portal-api/internal/domain"
	"github.com/jrpvbrasil/portal-api/pkg/logger"
)

// ConsultaFetcher busca a lista de boletos de um CPF no proxy do portal.
type ConsultaFetcher interface {
	ConsultarBoletos(ctx context.Context, cpf string) ([]dto.BoletoDTO, error)
}

// numeroBoletoRe extrai o número do boleto do cabeçalho do card ("Boleto #123").
var numeroBoletoRe = regexp.MustCompile(`#(\d+)`)

// Enhancer percorre os cards da página e injeta os widgets de veículo e PIX.
// O ciclo de varredura é idempotente: cards já marcados são pulados e cada
// widget é inserido no máximo uma vez por card.
type Enhancer struct {
	pagina  Pagina
	fetcher ConsultaFetcher
	cache   *cacheConsultas
	emVoo   *semaphore.Weighted // permissão única: um fetch por vez, excedentes descartados
	log     *logger.Logger
}

// New constrói o enhancer para uma página.
func New(pagina Pagina, fetcher ConsultaFetcher, log *logger.Logger) *Enhancer {
	return &Enhancer{
		pagina:  pagina,
		fetcher: fetcher,
		cache:   novoCacheConsultas(),
		emVoo:   semaphore.NewWeighted(1),
		log:     log,
	}
}

// Scan executa um ciclo de varredura. Erros de fetch ou de injeção encerram o
// processamento do card no ciclo atual sem marcá-lo, então ele volta a ser
// candidato no próximo ciclo; nada aqui derruba o laço do observador.
func (e *Enhancer) Scan(ctx context.Context) {
	cpf := domain.SomenteDigitos(e.pagina.CampoCPF())
	if len(cpf) != 11 {
		return
	}

	for _, card := range e.pagina.Cards() {
		if card.Marcado() {
			continue
		}
		numero := extrairNumero(card.Titulo())
		if numero == "" {
			continue
		}

		docs, ok, err := e.buscar(ctx, cpf)
		if err != nil {
			e.log.Warn().Err(err).Str("cpf", logger.MascararCPF(cpf)).Msg("enhancer: falha ao buscar boletos")
			return
		}
		if !ok {
			// Outro ciclo está com o fetch em andamento; este ciclo é
			// descartado e a varredura repete na próxima notificação.
			return
		}

		boleto, achou := procurar(docs, numero)
		if !achou {
			// Sem correspondência ainda (dados e card podem renderizar fora
			// de ordem); o card fica sem marca e é re-tentado depois.
			continue
		}

		if err := e.enriquecer(card, boleto); err != nil {
			e.log.Warn().Err(err).Str("boleto", numero).Msg("enhancer: falha ao injetar widget")
			continue
		}
	}
}

// buscar resolve a lista de boletos do CPF: cache de slot único primeiro;
// na falta, um único fetch protegido pela permissão única. ok=false indica
// que o fetch foi descartado por já existir um em andamento.
func (e *Enhancer) buscar(ctx context.Context, cpf string) (docs []dto.BoletoDTO, ok bool, err error) {
	if docs, hit := e.cache.get(cpf); hit {
		return docs, true, nil
	}
	if !e.emVoo.TryAcquire(1) {
		return nil, false, nil
	}
	defer e.emVoo.Release(1)

	docs, err = e.fetcher.ConsultarBoletos(ctx, cpf)
	if err != nil {
		return nil, false, err
	}
	e.cache.set(cpf, docs)
	return docs, true, nil
}

// enriquecer injeta os widgets aplicáveis e marca o card ao final.
func (e *Enhancer) enriquecer(card Card, b dto.BoletoDTO) error {
	if len(b.Veiculo) > 0 && !card.TemWidget(WidgetVeiculo) {
		if err := card.InserirWidget(NovoWidgetVeiculo(b.Veiculo[0])); err != nil {
			return err
		}
	}
	if b.Pix != nil && b.Pix.CopiaCola != "" && b.Pago == domain.PagoNao && !card.TemWidget(WidgetPix) {
		if err := card.InserirWidget(NovoWidgetPix(b.Pix.CopiaCola)); err != nil {
			return err
		}
	}
	card.Marcar()
	return nil
}

func extrairNumero(titulo string) string {
	m := numeroBoletoRe.FindStringSubmatch(titulo)
	if m == nil {
		return ""
	}
	return m[1]
}

// procurar localiza o boleto pelo número do card, com igualdade normalizada
// para string (o SGA ora devolve codigo_boleto como número, ora como string).
func procurar(docs []dto.BoletoDTO, numero string) (dto.BoletoDTO, bool) {
	for _, b := range docs {
		if domain.SomenteDigitos(b.CodigoBoleto.String()) == numero || domain.SomenteDigitos(b.ID) == numero {
			return b, true
		}
	}
	return dto.BoletoDTO{}, false
}
