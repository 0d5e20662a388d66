package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	ordersm "github.com/cozinhapro/cozinha-api/internal/domain/order"
)

func TestAdvanceOrderProductionGate(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusEmPreparo)
	s.items["order-1"] = []*entity.OrderItem{
		{ID: "i1", OrderID: "order-1", ProductName: "Coxinha", Status: entity.ItemStatusPending},
		{ID: "i2", OrderID: "order-1", ProductName: "Pão de Queijo", Status: entity.ItemStatusNoProductionNeeded},
	}

	uc := newTestUseCase(s)
	ctx := context.Background()
	in := dto.AdvanceOrderRequest{ToStatus: ordersm.StatusEmSeparacao}

	err := uc.AdvanceOrder(ctx, testActor(entity.RoleProducao), "order-1", in)
	assert.ErrorIs(t, err, domain.ErrProductionPending, "item pendente bloqueia a saída de em_preparo")

	// Item resolvido libera a transição. A checagem é no momento do avanço.
	s.items["order-1"][0].Status = entity.ItemStatusDone
	require.NoError(t, uc.AdvanceOrder(ctx, testActor(entity.RoleProducao), "order-1", in))
	assert.Equal(t, ordersm.StatusEmSeparacao, s.orders["order-1"].Status)
}

func TestAdvanceOrderAntiSkip(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusAceito)
	uc := newTestUseCase(s)
	ctx := context.Background()

	// Pular etapa é transição ilegal mesmo para admin.
	err := uc.AdvanceOrder(ctx, testActor(entity.RoleAdmin), "order-1", dto.AdvanceOrderRequest{ToStatus: ordersm.StatusEmSeparacao})
	assert.ErrorIs(t, err, domain.ErrTransitionNotAllowed)

	// Status fora dos nove definidos é rejeitado na entrada.
	err = uc.AdvanceOrder(ctx, testActor(entity.RoleAdmin), "order-1", dto.AdvanceOrderRequest{ToStatus: "em_conferencia"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Papel sem permissão para sair de em_faturamento.
	s.orders["order-1"].Status = ordersm.StatusEmFaturamento
	err = uc.AdvanceOrder(ctx, testActor(entity.RoleProducao), "order-1", dto.AdvanceOrderRequest{ToStatus: ordersm.StatusEmTransporte})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdvanceOrderReabertoBehavesAsAceito(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusReaberto)
	uc := newTestUseCase(s)

	err := uc.AdvanceOrder(context.Background(), testActor(entity.RoleOperacao), "order-1",
		dto.AdvanceOrderRequest{ToStatus: ordersm.StatusEmPreparo})
	require.NoError(t, err, "valor legado progride como aceitou_pedido")
	assert.Equal(t, ordersm.StatusEmPreparo, s.orders["order-1"].Status)
}

func TestCancelOrderPolicy(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusEmPreparo)
	uc := newTestUseCase(s)
	ctx := context.Background()

	err := uc.CancelOrder(ctx, testActor(entity.RoleOperacao), "order-1", dto.CancelOrderRequest{Reason: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyReason, "motivo em branco não cancela")

	err = uc.CancelOrder(ctx, testActor(entity.RoleCliente), "order-1", dto.CancelOrderRequest{Reason: "desisti"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "cliente nunca cancela")

	require.NoError(t, uc.CancelOrder(ctx, testActor(entity.RoleOperacao), "order-1", dto.CancelOrderRequest{Reason: "cliente desistiu"}))
	ord := s.orders["order-1"]
	assert.Equal(t, ordersm.StatusCancelado, ord.Status)
	require.NotNil(t, ord.CancelReason)
	assert.Equal(t, "cliente desistiu", *ord.CancelReason)

	// Cancelar de novo conflita.
	err = uc.CancelOrder(ctx, testActor(entity.RoleAdmin), "order-1", dto.CancelOrderRequest{Reason: "de novo"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCancelAfterDeliveryOnlyAdmin(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusEntregue)
	uc := newTestUseCase(s)
	ctx := context.Background()

	err := uc.CancelOrder(ctx, testActor(entity.RoleOperacao), "order-1", dto.CancelOrderRequest{Reason: "erro de faturamento"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.CancelOrder(ctx, testActor(entity.RoleAdmin), "order-1", dto.CancelOrderRequest{Reason: "erro de faturamento"}))
	assert.Equal(t, ordersm.StatusCancelado, s.orders["order-1"].Status)
}

func TestReopenOrderAdminOnly(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusCancelado)
	uc := newTestUseCase(s)
	ctx := context.Background()

	err := uc.ReopenOrder(ctx, testActor(entity.RoleOperacao), "order-1", dto.ReopenOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.ReopenOrder(ctx, testActor(entity.RoleAdmin), "order-1", dto.ReopenOrderRequest{Note: "cobrança resolvida"}))
	ord := s.orders["order-1"]
	assert.Equal(t, ordersm.StatusAceito, ord.Status, "reabertura volta ao equivalente moderno de reaberto")
	require.NotNil(t, ord.ReopenedBy)
}

func TestTimelineDedupAndVisibility(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusAceito)
	at := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	s.events = []*entity.OrderStatusEvent{
		{ID: "e1", OrderID: "order-1", FromStatus: "pedido_criado", ToStatus: "aceitou_pedido", Visible: true, ActorID: testUser, CreatedAt: at},
		// Double-submission: mesmo conteúdo, mesmo segundo.
		{ID: "e2", OrderID: "order-1", FromStatus: "pedido_criado", ToStatus: "aceitou_pedido", Visible: true, ActorID: testUser, CreatedAt: at.Add(300 * time.Millisecond)},
		{ID: "e3", OrderID: "order-1", FromStatus: "aceitou_pedido", ToStatus: "em_preparo", Visible: false, ActorID: testUser, CreatedAt: at.Add(time.Minute)},
	}

	uc := newTestUseCase(s)
	out, err := uc.Timeline(context.Background(), testActor(entity.RoleOperacao), "order-1")
	require.NoError(t, err)
	require.Len(t, out, 1, "duplicado por conteúdo+segundo e evento invisível ficam de fora")
	assert.Equal(t, "aceitou_pedido", out[0].ToStatus)
}
