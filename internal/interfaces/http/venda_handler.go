package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/caixaflow/pdv-api/internal/application/dto"
	"github.com/caixaflow/pdv-api/internal/application/vendas"
	"github.com/caixaflow/pdv-api/internal/domain"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
)

// VendaHandler trata o registro de vendas e as consultas por turno.
type VendaHandler struct {
	uc *vendas.UseCase
}

// NewVendaHandler constrói o handler de vendas.
func NewVendaHandler(uc *vendas.UseCase) *VendaHandler {
	return &VendaHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar venda liquidada
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "total, payment_method, origin, description"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *VendaHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	sale, err := h.uc.RegisterSale(c.Context(), vendas.SaleInput{
		OperatorID:    GetUserID(c),
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		Origin:        in.Origin,
		Description:   in.Description,
	})
	if err != nil {
		return vendaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
}

// ListByShift godoc
// @Summary      Vendas de um turno
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        turno  query  string  true  "ID do turno"
// @Success      200  {array}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas [get]
func (h *VendaHandler) ListByShift(c *fiber.Ctx) error {
	shiftID := c.Query("turno")
	if shiftID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro turno é obrigatório"})
	}
	sales, err := h.uc.SalesByShift(c.Context(), shiftID)
	if err != nil {
		return vendaError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return c.JSON(fiber.Map{"total": len(out), "sales": out})
}

// Summary godoc
// @Summary      Totais por forma de pagamento de um turno
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do turno"
// @Success      200  {object}  dto.SalesSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/turnos/{id}/resumo [get]
func (h *VendaHandler) Summary(c *fiber.Ctx) error {
	shiftID := c.Params("id")
	totals, grand, err := h.uc.TotalsByMethod(c.Context(), shiftID)
	if err != nil {
		return vendaError(c, err)
	}
	out := dto.SalesSummaryResponse{
		ShiftID:        shiftID,
		Total:          grand,
		TotalsByMethod: make(map[string]decimal.Decimal, len(totals)),
	}
	for m, v := range totals {
		out.TotalsByMethod[string(m)] = v
	}
	return c.JSON(out)
}

func vendaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoActiveShift):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_OPEN_SHIFT", Message: "nenhum turno de caixa aberto"})
	case errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "total da venda deve ser positivo"})
	case errors.Is(err, domain.ErrInvalidPayment):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PAYMENT", Message: "forma de pagamento desconhecida"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "turno não encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		ShiftID:       s.ShiftID,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		Origin:        s.Origin,
		Description:   s.Description,
		CreatedAt:     s.CreatedAt,
	}
}
