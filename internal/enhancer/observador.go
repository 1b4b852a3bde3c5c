package enhancer

import (
	"context"
	"time"

	"github.com/jrpvbrasil/portal-api/pkg/logger"
)

// Valores padrão do observador: rajadas de notificações colapsam em uma única
// varredura após um curto período de silêncio; um tick de segurança cobre
// conteúdo renderizado por mecanismos que não emitem notificação.
const (
	DebouncePadrao = 250 * time.Millisecond
	FallbackPadrao = 1 * time.Second
)

// OpcoesObservador parametriza o observador; zero values usam os padrões.
type OpcoesObservador struct {
	Debounce  time.Duration
	Fallbacks []time.Duration
}

// Observador assina um fluxo de notificações de mudança de conteúdo e dispara
// varreduras debounced do enhancer. Não tem estado terminal: roda até o
// cancelamento do contexto.
type Observador struct {
	enhancer *Enhancer
	notifs   chan struct{}
	opts     OpcoesObservador
	log      *logger.Logger
}

// NewObservador constrói o observador.
func NewObservador(e *Enhancer, log *logger.Logger, opts OpcoesObservador) *Observador {
	if opts.Debounce <= 0 {
		opts.Debounce = DebouncePadrao
	}
	if len(opts.Fallbacks) == 0 {
		opts.Fallbacks = []time.Duration{FallbackPadrao}
	}
	return &Observador{
		enhancer: e,
		notifs:   make(chan struct{}, 1),
		opts:     opts,
		log:      log,
	}
}

// Notificar registra uma mudança de conteúdo. Nunca bloqueia: notificações
// durante uma janela já pendente são colapsadas.
func (o *Observador) Notificar() {
	select {
	case o.notifs <- struct{}{}:
	default:
	}
}

// Executar consome notificações até o cancelamento do contexto. Os ticks de
// segurança são agendados na partida e entram pelo mesmo funil de debounce.
func (o *Observador) Executar(ctx context.Context) {
	for _, d := range o.opts.Fallbacks {
		t := time.AfterFunc(d, o.Notificar)
		defer t.Stop()
	}

	debounce := time.NewTimer(o.opts.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	armado := false

	o.log.Debug().Dur("debounce", o.opts.Debounce).Msg("observador iniciado")

	for {
		select {
		case <-ctx.Done():
			if armado {
				debounce.Stop()
			}
			return
		case <-o.notifs:
			if armado && !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(o.opts.Debounce)
			armado = true
		case <-debounce.C:
			armado = false
			o.enhancer.Scan(ctx)
		}
	}
}
