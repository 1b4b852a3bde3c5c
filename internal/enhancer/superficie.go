// Package enhancer reconcilia cards de boleto renderizados pelo portal com os
// dados consultados no proxy: injeta widgets de veículo e de PIX em cada card,
// exatamente uma vez, reagindo a notificações de mudança de conteúdo.
//
// O pacote não conhece a camada de renderização; opera sobre o contrato
// Pagina/Card abaixo, que espelha a estrutura que o portal expõe (cabeçalho
// com "#<número>", campo de CPF, âncora de inserção por card).
package enhancer

// TipoWidget identifica os widgets que o enhancer injeta nos cards.
type TipoWidget string

const (
	WidgetVeiculo TipoWidget = "veiculo"
	WidgetPix     TipoWidget = "pix"
)

// Pagina é o contrato de integração com a camada de renderização.
type Pagina interface {
	// Cards devolve os cards de boleto candidatos presentes na página.
	Cards() []Card

	// CampoCPF devolve o valor atual do campo de CPF do formulário
	// (possivelmente com máscara; pode estar vazio).
	CampoCPF() string
}

// Card é um card de boleto renderizado. A marcação de "enriquecido" pertence
// ao card; um card sem marca volta a ser candidato no próximo ciclo.
type Card interface {
	// Titulo devolve o texto do cabeçalho do card, que contém "#<número>".
	Titulo() string

	// Marcado informa se o card já foi enriquecido.
	Marcado() bool

	// Marcar registra o card como enriquecido.
	Marcar()

	// TemWidget informa se o card já possui um widget do tipo.
	TemWidget(tipo TipoWidget) bool

	// InserirWidget insere o widget antes do botão de ação do card.
	InserirWidget(w *Widget) error
}
