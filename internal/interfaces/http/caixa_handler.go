package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	appcaixa "github.com/caixaflow/pdv-api/internal/application/caixa"
	"github.com/caixaflow/pdv-api/internal/application/dto"
	"github.com/caixaflow/pdv-api/internal/domain"
	domaincaixa "github.com/caixaflow/pdv-api/internal/domain/caixa"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
	"github.com/caixaflow/pdv-api/pkg/moeda"
)

// CaixaHandler trata as operações do caixa: abertura, fechamento, sangria,
// reforço, relatório de conferência e histórico de turnos.
type CaixaHandler struct {
	uc *appcaixa.LedgerUseCase
}

// NewCaixaHandler constrói o handler do caixa.
func NewCaixaHandler(uc *appcaixa.LedgerUseCase) *CaixaHandler {
	return &CaixaHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir turno de caixa
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenShiftRequest  true  "initial_cash_fund"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caixa/abrir [post]
func (h *CaixaHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	shift, err := h.uc.OpenShift(c.Context(), GetUserID(c), GetUserName(c), in.InitialCashFund)
	if err != nil {
		return caixaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toShiftResponse(shift))
}

// Close godoc
// @Summary      Fechar turno de caixa
// @Description  Grava o dinheiro contado, congela o total de vendas e encerra o turno.
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseShiftRequest  true  "final_cash_amount"
// @Success      200   {object}  dto.ShiftDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caixa/fechar [post]
func (h *CaixaHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	shift, err := h.uc.CloseShift(c.Context(), in.FinalCashAmount)
	if err != nil {
		return caixaError(c, err)
	}
	return c.JSON(toShiftDetailResponse(shift))
}

// Withdrawal godoc
// @Summary      Registrar sangria
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashOperationRequest  true  "amount, reason"
// @Success      201   {object}  dto.CashOperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caixa/sangria [post]
func (h *CaixaHandler) Withdrawal(c *fiber.Ctx) error {
	return h.operation(c, h.uc.AddWithdrawal)
}

// Addition godoc
// @Summary      Registrar reforço
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashOperationRequest  true  "amount, reason"
// @Success      201   {object}  dto.CashOperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caixa/reforco [post]
func (h *CaixaHandler) Addition(c *fiber.Ctx) error {
	return h.operation(c, h.uc.AddAddition)
}

func (h *CaixaHandler) operation(c *fiber.Ctx, register func(ctx context.Context, operatorID string, amount decimal.Decimal, reason string) (*entity.CashOperation, error)) error {
	var in dto.CashOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	op, err := register(c.Context(), GetUserID(c), in.Amount, in.Reason)
	if err != nil {
		return caixaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOperationResponse(op))
}

// Current godoc
// @Summary      Turno aberto
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caixa/atual [get]
func (h *CaixaHandler) Current(c *fiber.Ctx) error {
	shift, err := h.uc.Current(c.Context())
	if err != nil {
		return caixaError(c, err)
	}
	if shift == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_OPEN_SHIFT", Message: "nenhum turno de caixa aberto"})
	}
	return c.JSON(toShiftDetailResponse(shift))
}

// Report godoc
// @Summary      Relatório de conferência do turno aberto (prévia)
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftReportResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/caixa/relatorio [get]
func (h *CaixaHandler) Report(c *fiber.Ctx) error {
	report, shift, err := h.uc.Report(c.Context())
	if err != nil {
		return caixaError(c, err)
	}
	return c.JSON(toReportResponse(report, shift))
}

// History godoc
// @Summary      Histórico de turnos
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de turnos (padrão 20)"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {array}  dto.ShiftResponse
// @Router       /api/caixa/turnos [get]
func (h *CaixaHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()
	shifts, err := h.uc.History(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return caixaError(c, err)
	}
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, toShiftResponse(s))
	}
	return c.JSON(fiber.Map{"total": len(out), "shifts": out})
}

// ReportByShift godoc
// @Summary      Relatório de conferência de um turno do histórico
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do turno"
// @Success      200  {object}  dto.ShiftReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caixa/turnos/{id}/relatorio [get]
func (h *CaixaHandler) ReportByShift(c *fiber.Ctx) error {
	report, shift, err := h.uc.ReportByShift(c.Context(), c.Params("id"))
	if err != nil {
		return caixaError(c, err)
	}
	return c.JSON(toReportResponse(report, shift))
}

// caixaError mapeia os erros do domínio do caixa para status e código HTTP.
// Cada tipo de erro tem um código próprio: o front exibe uma mensagem
// distinta por código, nenhuma falha vira no-op silencioso.
func caixaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrShiftAlreadyOpen):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SHIFT_ALREADY_OPEN", Message: "já existe um turno de caixa aberto"})
	case errors.Is(err, domain.ErrNoActiveShift):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_OPEN_SHIFT", Message: "nenhum turno de caixa aberto"})
	case errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "valor monetário inválido"})
	case errors.Is(err, domain.ErrInvalidReason):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_REASON", Message: "informe o motivo da operação"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "turno não encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toShiftResponse(s *entity.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:              s.ID,
		OperatorID:      s.OperatorID,
		OperatorName:    s.OperatorName,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		InitialCashFund: s.InitialCashFund,
		FinalCashAmount: s.FinalCashAmount,
		TotalSales:      s.TotalSales,
		Status:          s.Status,
	}
}

func toShiftDetailResponse(s *entity.Shift) dto.ShiftDetailResponse {
	out := dto.ShiftDetailResponse{
		ShiftResponse: toShiftResponse(s),
		Withdrawals:   make([]dto.CashOperationResponse, 0, len(s.Withdrawals)),
		Additions:     make([]dto.CashOperationResponse, 0, len(s.Additions)),
	}
	for _, op := range s.Withdrawals {
		out.Withdrawals = append(out.Withdrawals, toOperationResponse(op))
	}
	for _, op := range s.Additions {
		out.Additions = append(out.Additions, toOperationResponse(op))
	}
	return out
}

func toOperationResponse(op *entity.CashOperation) dto.CashOperationResponse {
	return dto.CashOperationResponse{
		ID:        op.ID,
		ShiftID:   op.ShiftID,
		Type:      op.Type,
		Amount:    op.Amount,
		Reason:    op.Reason,
		CreatedAt: op.CreatedAt,
		CreatedBy: op.CreatedBy,
	}
}

func toReportResponse(r *domaincaixa.Report, shift *entity.Shift) dto.ShiftReportResponse {
	out := dto.ShiftReportResponse{
		ShiftID:             r.ShiftID,
		Status:              shift.Status,
		InitialCashFund:     r.InitialCashFund,
		CashSales:           r.CashSales,
		TotalWithdrawals:    r.TotalWithdrawals,
		TotalAdditions:      r.TotalAdditions,
		ExpectedCash:        r.ExpectedCash,
		TotalSales:          r.TotalSales,
		SalesByMethod:       make(map[string]decimal.Decimal, len(r.SalesByMethod)),
		FinalCashAmount:     r.FinalCashAmount,
		Difference:          r.Difference,
		Outcome:             r.Outcome,
		ExpectedCashDisplay: moeda.FormatBRL(r.ExpectedCash),
	}
	for m, v := range r.SalesByMethod {
		out.SalesByMethod[string(m)] = v
	}
	return out
}
