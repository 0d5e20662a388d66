package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/order"
)

// A cadeia completa deve avançar status a status, sem pulos.
func TestNext_CadeiaCompleta(t *testing.T) {
	chain := []string{
		order.StatusCriado, order.StatusAceito, order.StatusEmPreparo,
		order.StatusEmSeparacao, order.StatusEmFaturamento,
		order.StatusEmTransporte, order.StatusEntregue,
	}
	for i := 0; i < len(chain)-1; i++ {
		got, ok := order.Next(chain[i])
		assert.True(t, ok, "deve existir próximo status a partir de %s", chain[i])
		assert.Equal(t, chain[i+1], got)
	}
	_, ok := order.Next(order.StatusEntregue)
	assert.False(t, ok, "entregue é terminal")
}

func TestCanAdvance_MatrizDePapeis(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		from    string
		to      string
		wantErr error
	}{
		{"operacao avança aceito->preparo", entity.RoleOperacao, order.StatusAceito, order.StatusEmPreparo, nil},
		{"producao avança preparo->separacao", entity.RoleProducao, order.StatusEmPreparo, order.StatusEmSeparacao, nil},
		{"estoque avança separacao->faturamento", entity.RoleEstoque, order.StatusEmSeparacao, order.StatusEmFaturamento, nil},
		{"estoque NAO avança preparo->separacao", entity.RoleEstoque, order.StatusEmPreparo, order.StatusEmSeparacao, domain.ErrForbidden},
		{"fiscal avança faturamento->transporte", entity.RoleFiscal, order.StatusEmFaturamento, order.StatusEmTransporte, nil},
		{"operacao NAO avança faturamento->transporte", entity.RoleOperacao, order.StatusEmFaturamento, order.StatusEmTransporte, domain.ErrForbidden},
		{"entrega avança transporte->entregue", entity.RoleEntrega, order.StatusEmTransporte, order.StatusEntregue, nil},
		{"producao NAO avança transporte->entregue", entity.RoleProducao, order.StatusEmTransporte, order.StatusEntregue, domain.ErrForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := order.CanAdvance(tc.role, tc.from, tc.to)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// Anti-skip: a transição deve ser rejeitada como ilegal mesmo para admin.
func TestCanAdvance_AntiSkip(t *testing.T) {
	err := order.CanAdvance(entity.RoleAdmin, order.StatusAceito, order.StatusEmFaturamento)
	assert.ErrorIs(t, err, domain.ErrTransitionNotAllowed)

	// Retroceder também é ilegal.
	err = order.CanAdvance(entity.RoleAdmin, order.StatusEmSeparacao, order.StatusEmPreparo)
	assert.ErrorIs(t, err, domain.ErrTransitionNotAllowed)
}

// pedido_criado sai apenas via aceitação; terminais não avançam.
func TestCanAdvance_ForaDaCadeia(t *testing.T) {
	assert.ErrorIs(t, order.CanAdvance(entity.RoleAdmin, order.StatusCriado, order.StatusAceito), domain.ErrTransitionNotAllowed)
	assert.ErrorIs(t, order.CanAdvance(entity.RoleAdmin, order.StatusEntregue, order.StatusEntregue), domain.ErrTransitionNotAllowed)
	assert.ErrorIs(t, order.CanAdvance(entity.RoleAdmin, order.StatusCancelado, order.StatusAceito), domain.ErrTransitionNotAllowed)
}

// Registro legado com status "reaberto" progride como aceitou_pedido.
func TestCanAdvance_ReabertoEquivaleAceito(t *testing.T) {
	assert.NoError(t, order.CanAdvance(entity.RoleOperacao, order.StatusReaberto, order.StatusEmPreparo))
}

func TestCanAccept(t *testing.T) {
	assert.NoError(t, order.CanAccept(entity.RoleProducao, order.StatusCriado))
	assert.ErrorIs(t, order.CanAccept(entity.RoleEstoque, order.StatusCriado), domain.ErrForbidden)
	assert.ErrorIs(t, order.CanAccept(entity.RoleAdmin, order.StatusAceito), domain.ErrConflict)
}

func TestCanCancel_Politica(t *testing.T) {
	// Cliente e entrega nunca cancelam.
	assert.ErrorIs(t, order.CanCancel(entity.RoleCliente, order.StatusCriado), domain.ErrForbidden)
	assert.ErrorIs(t, order.CanCancel(entity.RoleEntrega, order.StatusAceito), domain.ErrForbidden)

	// Staff cancela até em_faturamento.
	assert.NoError(t, order.CanCancel(entity.RoleOperacao, order.StatusEmFaturamento))
	assert.NoError(t, order.CanCancel(entity.RoleFiscal, order.StatusEmPreparo))

	// Em em_transporte, somente admin.
	assert.ErrorIs(t, order.CanCancel(entity.RoleEstoque, order.StatusEmTransporte), domain.ErrForbidden)
	assert.NoError(t, order.CanCancel(entity.RoleAdmin, order.StatusEmTransporte))

	// Após a entrega, somente admin.
	assert.ErrorIs(t, order.CanCancel(entity.RoleOperacao, order.StatusEntregue), domain.ErrForbidden)
	assert.NoError(t, order.CanCancel(entity.RoleAdmin, order.StatusEntregue))

	// Cancelado não cancela de novo.
	assert.ErrorIs(t, order.CanCancel(entity.RoleAdmin, order.StatusCancelado), domain.ErrConflict)
}

func TestCanReopen_SomenteAdminDeCancelado(t *testing.T) {
	assert.NoError(t, order.CanReopen(entity.RoleAdmin, order.StatusCancelado))
	assert.ErrorIs(t, order.CanReopen(entity.RoleOperacao, order.StatusCancelado), domain.ErrForbidden)
	assert.ErrorIs(t, order.CanReopen(entity.RoleAdmin, order.StatusEntregue), domain.ErrConflict)
}

func TestValid_NoveValores(t *testing.T) {
	for _, s := range []string{
		order.StatusCriado, order.StatusAceito, order.StatusEmPreparo,
		order.StatusEmSeparacao, order.StatusEmFaturamento, order.StatusEmTransporte,
		order.StatusEntregue, order.StatusCancelado, order.StatusReaberto,
	} {
		assert.True(t, order.Valid(s), s)
	}
	assert.False(t, order.Valid("em_espera"))
}
