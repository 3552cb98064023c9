package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caixaflow/pdv-api/internal/application/caixa"
	"github.com/caixaflow/pdv-api/internal/domain/repository"
)

var _ caixa.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
// Abertura e fechamento de turno dependem dele: a leitura do turno aberto e
// a escrita precisam ser o check-and-set atômico que o modelo multi-terminal exige.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	shiftRepo repository.ShiftRepository,
	opRepo repository.CashOperationRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shiftRepo := NewShiftRepository(tx)
	opRepo := NewCashOperationRepository(tx)
	saleRepo := NewSaleRepository(tx)

	if err := fn(shiftRepo, opRepo, saleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
