package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caixaflow/pdv-api/internal/application/auth"
	appcaixa "github.com/caixaflow/pdv-api/internal/application/caixa"
	"github.com/caixaflow/pdv-api/internal/application/vendas"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	LedgerUC  *appcaixa.LedgerUseCase
	VendasUC  *vendas.UseCase
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Caixa (protegido). Mutações do caixa só para admin e caixa;
	// garçom consulta mas não mexe na gaveta.
	caixaGroup := protected.Group("/caixa")
	caixaHandler := NewCaixaHandler(deps.LedgerUC)
	mutate := RequireRole(entity.RoleAdmin, entity.RoleCaixa)
	caixaGroup.Post("/abrir", mutate, caixaHandler.Open)
	caixaGroup.Post("/fechar", mutate, caixaHandler.Close)
	caixaGroup.Post("/sangria", mutate, caixaHandler.Withdrawal)
	caixaGroup.Post("/reforco", mutate, caixaHandler.Addition)
	caixaGroup.Get("/atual", caixaHandler.Current)
	caixaGroup.Get("/relatorio", caixaHandler.Report)
	caixaGroup.Get("/turnos", caixaHandler.History)
	caixaGroup.Get("/turnos/:id/relatorio", caixaHandler.ReportByShift)

	// Vendas (protegido): todas as funções registram venda
	vendasGroup := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendasUC)
	vendasGroup.Post("/", vendaHandler.Register)
	vendasGroup.Get("/", vendaHandler.ListByShift)
	vendasGroup.Get("/turnos/:id/resumo", vendaHandler.Summary)
}
