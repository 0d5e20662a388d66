package labels

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	ordersm "github.com/cozinhapro/cozinha-api/internal/domain/order"
)

const (
	testEstab = "estab-1"
	testUser  = "user-1"
)

func testActor(role string) domain.Actor {
	return domain.Actor{EstablishmentID: testEstab, UserID: testUser, Role: role}
}

func qty(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func seedLabel(s *fakeStore, total, used string) *entity.InventoryLabel {
	l := &entity.InventoryLabel{
		ID:              "label-1",
		EstablishmentID: testEstab,
		ProductID:       "prod-a",
		ProductName:     "Pão de Queijo",
		Code:            "LT-PPQ-0810-1A",
		Qty:             qty(total),
		UsedQty:         qty(used),
		Unit:            "KG",
		Status:          entity.LabelStatusDisponivel,
		CreatedAt:       time.Now(),
	}
	s.labels[l.ID] = l
	return l
}

func seedOrder(s *fakeStore, status string) *entity.Order {
	o := &entity.Order{ID: "order-1", EstablishmentID: testEstab, Status: status}
	s.orders[o.ID] = o
	return o
}

func TestConsumeLabelPartialBoundary(t *testing.T) {
	s := newFakeStore()
	seedLabel(s, "10", "7")
	seedOrder(s, ordersm.StatusEmSeparacao)
	uc := newTestUseCase(s)
	ctx := context.Background()
	actor := testActor(entity.RoleEstoque)

	// 7 já consumidos de 10: pedir 5 estoura o saldo.
	over := qty("5")
	_, err := uc.ConsumeLabel(ctx, actor, dto.ConsumeLabelRequest{
		RawCode: "LT-PPQ-0810-1A", OrderID: "order-1", Quantity: &over,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.True(t, s.labels["label-1"].UsedQty.Equal(qty("7")), "falha não altera a etiqueta")
	assert.Empty(t, s.movements, "falha não emite movimento")

	// Pedir exatamente o restante consome e fecha a etiqueta.
	rest := qty("3")
	out, err := uc.ConsumeLabel(ctx, actor, dto.ConsumeLabelRequest{
		RawCode: "LT-PPQ-0810-1A", OrderID: "order-1", Quantity: &rest,
	})
	require.NoError(t, err)
	assert.True(t, out.Consumed.Equal(qty("3")))
	assert.True(t, out.Remaining.IsZero())
	assert.Equal(t, entity.LabelStatusUsada, out.LabelStatus)

	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, entity.MovementTypeOutOrder, mov.Type)
	assert.Equal(t, entity.DirectionOut, mov.Direction)
	assert.True(t, mov.Quantity.Equal(qty("3")), "quantidade do movimento é sempre positiva")
	require.Len(t, s.links, 1)
	assert.True(t, s.links[0].Quantity.Equal(qty("3")))
}

func TestConsumeLabelDefaultsToRemaining(t *testing.T) {
	s := newFakeStore()
	seedLabel(s, "10", "4")
	seedOrder(s, ordersm.StatusEmSeparacao)
	uc := newTestUseCase(s)

	out, err := uc.ConsumeLabel(context.Background(), testActor(entity.RoleOperacao), dto.ConsumeLabelRequest{
		RawCode: `{"lt":"LT-PPQ-0810-1A"}`, OrderID: "order-1",
	})
	require.NoError(t, err)
	assert.True(t, out.Consumed.Equal(qty("6")), "sem quantidade explícita, consome o restante")
	assert.Equal(t, entity.LabelStatusUsada, s.labels["label-1"].Status)
}

func TestConsumeLabelGuards(t *testing.T) {
	s := newFakeStore()
	seedLabel(s, "10", "0")
	seedOrder(s, ordersm.StatusEmSeparacao)
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.ConsumeLabel(ctx, testActor(entity.RoleProducao), dto.ConsumeLabelRequest{RawCode: "LT-PPQ-0810-1A", OrderID: "order-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "produção não separa")

	_, err = uc.ConsumeLabel(ctx, testActor(entity.RoleEstoque), dto.ConsumeLabelRequest{RawCode: "LT-PPQ-0810-1A"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pedido é obrigatório")

	// JSON válido sem nenhuma chave conhecida nem código reconhecível.
	_, err = uc.ConsumeLabel(ctx, testActor(entity.RoleEstoque), dto.ConsumeLabelRequest{RawCode: `{"outra_chave":1}`, OrderID: "order-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidQRPayload)

	// Texto cru sem estrutura é tratado como código; aqui não existe etiqueta com ele.
	_, err = uc.ConsumeLabel(ctx, testActor(entity.RoleEstoque), dto.ConsumeLabelRequest{RawCode: "um texto qualquer", OrderID: "order-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Pedido terminal não recebe separação.
	s.orders["order-1"].Status = ordersm.StatusCancelado
	_, err = uc.ConsumeLabel(ctx, testActor(entity.RoleEstoque), dto.ConsumeLabelRequest{RawCode: "LT-PPQ-0810-1A", OrderID: "order-1"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Etiqueta já usada não consome de novo.
	s.orders["order-1"].Status = ordersm.StatusEmSeparacao
	s.labels["label-1"].Status = entity.LabelStatusUsada
	_, err = uc.ConsumeLabel(ctx, testActor(entity.RoleEstoque), dto.ConsumeLabelRequest{RawCode: "LT-PPQ-0810-1A", OrderID: "order-1"})
	assert.ErrorIs(t, err, domain.ErrLabelConsumed)
}

func TestConsumeLabelMatchesItemByName(t *testing.T) {
	s := newFakeStore()
	seedLabel(s, "5", "0")
	seedOrder(s, ordersm.StatusEmSeparacao)
	s.items["order-1"] = []*entity.OrderItem{
		{ID: "i1", OrderID: "order-1", ProductName: "Coxinha"},
		{ID: "i2", OrderID: "order-1", ProductName: "pão de queijo"},
	}
	uc := newTestUseCase(s)

	out, err := uc.ConsumeLabel(context.Background(), testActor(entity.RoleAdmin), dto.ConsumeLabelRequest{
		RawCode: "LT-PPQ-0810-1A", OrderID: "order-1",
	})
	require.NoError(t, err)
	require.NotNil(t, out.OrderItemID)
	assert.Equal(t, "i2", *out.OrderItemID, "match por nome normalizado, insensível a acento e caixa")
}

func TestConsumeLabelNoItemMatchStillConsumes(t *testing.T) {
	s := newFakeStore()
	seedLabel(s, "5", "0")
	seedOrder(s, ordersm.StatusEmSeparacao)
	s.items["order-1"] = []*entity.OrderItem{
		{ID: "i1", OrderID: "order-1", ProductName: "Coxinha"},
	}
	uc := newTestUseCase(s)

	out, err := uc.ConsumeLabel(context.Background(), testActor(entity.RoleAdmin), dto.ConsumeLabelRequest{
		RawCode: "LT-PPQ-0810-1A", OrderID: "order-1",
	})
	require.NoError(t, err)
	assert.Nil(t, out.OrderItemID, "vínculo com item é informativo, não bloqueante")
	require.Len(t, s.movements, 1)
}
