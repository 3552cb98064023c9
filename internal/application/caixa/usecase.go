package caixa

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caixaflow/pdv-api/internal/domain"
	domaincaixa "github.com/caixaflow/pdv-api/internal/domain/caixa"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
	"github.com/caixaflow/pdv-api/internal/domain/repository"
)

// LedgerUseCase é o dono do invariante "no máximo um turno aberto" e de toda
// mutação monetária do caixa: abertura, fechamento, sangria e reforço.
type LedgerUseCase struct {
	txRunner  TxRunner
	shiftRepo repository.ShiftRepository
	opRepo    repository.CashOperationRepository
	saleRepo  repository.SaleRepository
}

// NewLedgerUseCase constrói o caso de uso do caixa.
func NewLedgerUseCase(
	txRunner TxRunner,
	shiftRepo repository.ShiftRepository,
	opRepo repository.CashOperationRepository,
	saleRepo repository.SaleRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:  txRunner,
		shiftRepo: shiftRepo,
		opRepo:    opRepo,
		saleRepo:  saleRepo,
	}
}

// OpenShift abre um turno com o fundo de caixa informado. Recusa com
// ErrShiftAlreadyOpen se já houver turno aberto — nunca fecha o anterior
// por baixo dos panos, isso descartaria vendas reais. A verificação e o
// INSERT rodam na mesma transação; o índice único parcial em shifts(status)
// segura o invariante mesmo com dois terminais abrindo ao mesmo tempo.
func (uc *LedgerUseCase) OpenShift(ctx context.Context, operatorID, operatorName string, fund decimal.Decimal) (*entity.Shift, error) {
	if operatorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := domaincaixa.ValidateFund(fund); err != nil {
		return nil, err
	}

	now := time.Now()
	shift := &entity.Shift{
		ID:              uuid.New().String(),
		OperatorID:      operatorID,
		OperatorName:    operatorName,
		StartTime:       now,
		InitialCashFund: fund,
		TotalSales:      decimal.Zero,
		Status:          entity.ShiftStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.txRunner.Run(ctx, func(
		shiftRepo repository.ShiftRepository,
		_ repository.CashOperationRepository,
		_ repository.SaleRepository,
	) error {
		open, err := shiftRepo.GetOpen()
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrShiftAlreadyOpen
		}
		return shiftRepo.Create(shift)
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// CloseShift fecha o turno aberto: grava o dinheiro contado, congela o total
// de vendas lido do agregador e marca status=fechado. Irreversível — depois
// do fechamento nenhuma sangria ou reforço entra mais neste turno.
// A diferença (contado - esperado) não é gravada: o relatório recalcula.
func (uc *LedgerUseCase) CloseShift(ctx context.Context, finalCash decimal.Decimal) (*entity.Shift, error) {
	if err := domaincaixa.ValidateFinalCount(finalCash); err != nil {
		return nil, err
	}

	var closed *entity.Shift
	err := uc.txRunner.Run(ctx, func(
		shiftRepo repository.ShiftRepository,
		opRepo repository.CashOperationRepository,
		saleRepo repository.SaleRepository,
	) error {
		shift, err := shiftRepo.GetOpen()
		if err != nil {
			return err
		}
		if shift == nil {
			return domain.ErrNoActiveShift
		}

		totals, err := saleRepo.TotalsByMethod(shift.ID)
		if err != nil {
			return err
		}
		totalSales := decimal.Zero
		for _, v := range totals {
			totalSales = totalSales.Add(v)
		}

		now := time.Now()
		shift.EndTime = &now
		shift.FinalCashAmount = &finalCash
		shift.TotalSales = totalSales
		shift.Status = entity.ShiftStatusClosed
		shift.UpdatedAt = now
		if err := shiftRepo.Close(shift); err != nil {
			return err
		}
		if err := loadOperations(opRepo, shift); err != nil {
			return err
		}
		closed = shift
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// AddWithdrawal registra uma sangria (retirada de dinheiro) no turno aberto.
func (uc *LedgerUseCase) AddWithdrawal(ctx context.Context, operatorID string, amount decimal.Decimal, reason string) (*entity.CashOperation, error) {
	return uc.addOperation(ctx, entity.OperationTypeWithdrawal, operatorID, amount, reason)
}

// AddAddition registra um reforço (entrada de dinheiro) no turno aberto.
func (uc *LedgerUseCase) AddAddition(ctx context.Context, operatorID string, amount decimal.Decimal, reason string) (*entity.CashOperation, error) {
	return uc.addOperation(ctx, entity.OperationTypeAddition, operatorID, amount, reason)
}

// addOperation valida e anexa uma operação ao turno aberto. Append-only:
// não existe caminho de update ou delete para operações registradas.
func (uc *LedgerUseCase) addOperation(ctx context.Context, opType, operatorID string, amount decimal.Decimal, reason string) (*entity.CashOperation, error) {
	if err := domaincaixa.ValidateOperation(amount, reason); err != nil {
		return nil, err
	}

	var op *entity.CashOperation
	err := uc.txRunner.Run(ctx, func(
		shiftRepo repository.ShiftRepository,
		opRepo repository.CashOperationRepository,
		_ repository.SaleRepository,
	) error {
		shift, err := shiftRepo.GetOpen()
		if err != nil {
			return err
		}
		if shift == nil {
			return domain.ErrNoActiveShift
		}
		op = &entity.CashOperation{
			ID:        uuid.New().String(),
			ShiftID:   shift.ID,
			Type:      opType,
			Amount:    amount,
			Reason:    strings.TrimSpace(reason),
			CreatedAt: time.Now(),
			CreatedBy: operatorID,
		}
		return opRepo.Create(op)
	})
	if err != nil {
		return nil, err
	}
	return op, nil
}

// Current devolve o turno aberto com sangrias e reforços carregados,
// ou nil se não houver turno aberto.
func (uc *LedgerUseCase) Current(ctx context.Context) (*entity.Shift, error) {
	shift, err := uc.shiftRepo.GetOpen()
	if err != nil || shift == nil {
		return nil, err
	}
	if err := loadOperations(uc.opRepo, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// Report calcula o relatório de conferência do turno aberto (prévia em turno
// corrente). Falha com ErrNoActiveShift se não houver turno aberto.
func (uc *LedgerUseCase) Report(ctx context.Context) (*domaincaixa.Report, *entity.Shift, error) {
	shift, err := uc.shiftRepo.GetOpen()
	if err != nil {
		return nil, nil, err
	}
	if shift == nil {
		return nil, nil, domain.ErrNoActiveShift
	}
	return uc.reportFor(shift)
}

// ReportByShift calcula o relatório de qualquer turno do histórico
// (conferência final de turnos fechados).
func (uc *LedgerUseCase) ReportByShift(ctx context.Context, shiftID string) (*domaincaixa.Report, *entity.Shift, error) {
	shift, err := uc.shiftRepo.GetByID(shiftID)
	if err != nil {
		return nil, nil, err
	}
	if shift == nil {
		return nil, nil, domain.ErrNotFound
	}
	return uc.reportFor(shift)
}

func (uc *LedgerUseCase) reportFor(shift *entity.Shift) (*domaincaixa.Report, *entity.Shift, error) {
	if err := loadOperations(uc.opRepo, shift); err != nil {
		return nil, nil, err
	}
	totals, err := uc.saleRepo.TotalsByMethod(shift.ID)
	if err != nil {
		return nil, nil, err
	}
	return domaincaixa.BuildReport(shift, totals), shift, nil
}

// History devolve os turnos em ordem decrescente de abertura.
func (uc *LedgerUseCase) History(ctx context.Context, limit, offset int) ([]*entity.Shift, error) {
	return uc.shiftRepo.List(limit, offset)
}

// loadOperations carrega as operações do turno e as separa por tipo,
// preservando a ordem de criação.
func loadOperations(opRepo repository.CashOperationRepository, shift *entity.Shift) error {
	ops, err := opRepo.ListByShift(shift.ID)
	if err != nil {
		return err
	}
	shift.Withdrawals = shift.Withdrawals[:0]
	shift.Additions = shift.Additions[:0]
	for _, op := range ops {
		switch op.Type {
		case entity.OperationTypeWithdrawal:
			shift.Withdrawals = append(shift.Withdrawals, op)
		case entity.OperationTypeAddition:
			shift.Additions = append(shift.Additions, op)
		}
	}
	return nil
}
