package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrConflict             = errors.New("conflito com o estado atual")
	ErrEmailAlreadyExists   = errors.New("o email já está registrado")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrTransitionNotAllowed = errors.New("transição de status não permitida")
	ErrEmptyReason          = errors.New("motivo obrigatório")
	ErrInsufficientBalance  = errors.New("saldo insuficiente na etiqueta")
	ErrLabelConsumed        = errors.New("etiqueta já consumida")
	ErrProductionPending    = errors.New("itens de produção pendentes")
	ErrInvalidQRPayload     = errors.New("conteúdo de QR inválido")
)
