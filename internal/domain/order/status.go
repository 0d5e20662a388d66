// Package order define a máquina de estados do ciclo de vida do pedido:
// a cadeia canônica de status, a tabela de adjacência e a matriz de
// permissões papel × transição. É a autoridade de validação do servidor;
// qualquer tabela no cliente é apenas dica de UX.
package order

// Status do pedido (valores de wire, imutáveis).
const (
	StatusCriado        = "pedido_criado"
	StatusAceito        = "aceitou_pedido"
	StatusEmPreparo     = "em_preparo"
	StatusEmSeparacao   = "em_separacao"
	StatusEmFaturamento = "em_faturamento"
	StatusEmTransporte  = "em_transporte"
	StatusEntregue      = "entregue"
	StatusCancelado     = "cancelado"
	StatusReaberto      = "reaberto" // valor legado: equivale a aceitou_pedido na progressão
)

// all contém os nove valores definidos.
var all = map[string]struct{}{
	StatusCriado: {}, StatusAceito: {}, StatusEmPreparo: {}, StatusEmSeparacao: {},
	StatusEmFaturamento: {}, StatusEmTransporte: {}, StatusEntregue: {},
	StatusCancelado: {}, StatusReaberto: {},
}

// Valid informa se s é um dos nove status definidos.
func Valid(s string) bool {
	_, ok := all[s]
	return ok
}

// Effective colapsa o valor legado "reaberto" em aceitou_pedido. Registros
// antigos gravaram reaberto como status próprio; para a progressão ele se
// comporta como aceitou_pedido.
func Effective(s string) string {
	if s == StatusReaberto {
		return StatusAceito
	}
	return s
}

// Terminal informa se o status encerra a progressão normal.
func Terminal(s string) bool {
	s = Effective(s)
	return s == StatusEntregue || s == StatusCancelado
}
