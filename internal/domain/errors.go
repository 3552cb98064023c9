package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")

	// Erros do caixa (turno).
	ErrShiftAlreadyOpen = errors.New("já existe um turno de caixa aberto")
	ErrNoActiveShift    = errors.New("nenhum turno de caixa aberto")
	ErrInvalidAmount    = errors.New("valor monetário inválido")
	ErrInvalidReason    = errors.New("motivo vazio ou inválido")
	ErrInvalidPayment   = errors.New("forma de pagamento desconhecida")
)
