package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrCPFObrigatorio      = errors.New("CPF é obrigatório")
	ErrCPFInvalido         = errors.New("CPF inválido")
	ErrFalhaAutenticacao   = errors.New("Falha na autenticação do usuário")
	ErrFalhaConsulta       = errors.New("CPF não encontrado ou erro ao consultar boletos")
	ErrPeriodoInvalido     = errors.New("período de vencimento inválido")
	ErrBoletoNaoEncontrado = errors.New("boleto não encontrado no período consultado")
)
