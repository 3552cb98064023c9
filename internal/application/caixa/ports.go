package caixa

import (
	"context"

	"github.com/caixaflow/pdv-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Abertura e fechamento de turno são um
// check-and-set: a verificação de "turno aberto" e a escrita precisam ser
// atômicas quando houver mais de um terminal.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		shiftRepo repository.ShiftRepository,
		opRepo repository.CashOperationRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
