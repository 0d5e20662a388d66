package order

import (
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
)

// next é a tabela de adjacência canônica da progressão não-terminal.
var next = map[string]string{
	StatusCriado:        StatusAceito,
	StatusAceito:        StatusEmPreparo,
	StatusEmPreparo:     StatusEmSeparacao,
	StatusEmSeparacao:   StatusEmFaturamento,
	StatusEmFaturamento: StatusEmTransporte,
	StatusEmTransporte:  StatusEntregue,
}

// advanceRoles: papéis autorizados a avançar o pedido PARA FORA do status chave.
var advanceRoles = map[string][]string{
	StatusAceito:        {entity.RoleAdmin, entity.RoleOperacao, entity.RoleProducao},
	StatusEmPreparo:     {entity.RoleAdmin, entity.RoleOperacao, entity.RoleProducao},
	StatusEmSeparacao:   {entity.RoleAdmin, entity.RoleOperacao, entity.RoleProducao, entity.RoleEstoque},
	StatusEmFaturamento: {entity.RoleAdmin, entity.RoleEstoque, entity.RoleFiscal},
	StatusEmTransporte:  {entity.RoleAdmin, entity.RoleEntrega, entity.RoleFiscal},
}

// acceptRoles: papéis autorizados a aceitar um pedido recém-criado.
var acceptRoles = []string{entity.RoleAdmin, entity.RoleOperacao, entity.RoleProducao}

// staffCancelLimit: último status em que papéis não-admin ainda podem cancelar.
var staffCancelable = map[string]struct{}{
	StatusCriado: {}, StatusAceito: {}, StatusEmPreparo: {},
	StatusEmSeparacao: {}, StatusEmFaturamento: {},
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Next devolve o próximo status da cadeia, se houver.
func Next(current string) (string, bool) {
	to, ok := next[Effective(current)]
	return to, ok
}

// CanAccept valida a aceitação (pedido_criado → aceitou_pedido).
func CanAccept(role, current string) error {
	if Effective(current) != StatusCriado {
		return domain.ErrConflict
	}
	if !contains(acceptRoles, role) {
		return domain.ErrForbidden
	}
	return nil
}

// CanAdvance valida a progressão monótona proposta pelo cliente.
// A adjacência é verificada antes do papel: pular etapas é rejeitado como
// transição ilegal mesmo para admin (anti-skip).
func CanAdvance(role, current, target string) error {
	cur := Effective(current)
	if Terminal(cur) || cur == StatusCriado {
		return domain.ErrTransitionNotAllowed
	}
	want, ok := next[cur]
	if !ok || target != want {
		return domain.ErrTransitionNotAllowed
	}
	roles, ok := advanceRoles[cur]
	if !ok || !contains(roles, role) {
		return domain.ErrForbidden
	}
	return nil
}

// CanCancel valida o cancelamento. Cliente e entrega nunca cancelam; admin
// cancela de qualquer estado não-cancelado (inclusive após a entrega);
// os demais papéis só até em_faturamento.
func CanCancel(role, current string) error {
	cur := Effective(current)
	if cur == StatusCancelado {
		return domain.ErrConflict
	}
	if role == entity.RoleCliente || role == entity.RoleEntrega {
		return domain.ErrForbidden
	}
	if role == entity.RoleAdmin {
		return nil
	}
	if _, ok := staffCancelable[cur]; !ok {
		return domain.ErrForbidden
	}
	return nil
}

// CanReopen valida a reabertura (cancelado → aceitou_pedido). Política única
// imposta no servidor: somente admin.
func CanReopen(role, current string) error {
	if Effective(current) != StatusCancelado {
		return domain.ErrConflict
	}
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
