package enhancer

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jrpvbrasil/portal-api/internal/application/dto"
)

// cacheConsultas guarda a última consulta por CPF. Slot único: trocar de CPF
// substitui a entrada anterior; não há expiração explícita, o cache vive
// enquanto o enhancer viver.
type cacheConsultas struct {
	lru *lru.Cache[string, []dto.BoletoDTO]
}

func novoCacheConsultas() *cacheConsultas {
	c, _ := lru.New[string, []dto.BoletoDTO](1) // err só ocorre com tamanho <= 0
	return &cacheConsultas{lru: c}
}

func (c *cacheConsultas) get(cpf string) ([]dto.BoletoDTO, bool) {
	return c.lru.Get(cpf)
}

func (c *cacheConsultas) set(cpf string, docs []dto.BoletoDTO) {
	c.lru.Add(cpf, docs)
}
