package orders

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

func seedOrder(s *fakeStore, status string, lines ...*entity.OrderLineItem) *entity.Order {
	ord := &entity.Order{
		ID:              "order-1",
		EstablishmentID: testEstab,
		Number:          1,
		Status:          status,
		CreatedBy:       testUser,
		CreatedAt:       time.Now(),
	}
	s.orders[ord.ID] = ord
	for _, l := range lines {
		l.OrderID = ord.ID
		s.lines[ord.ID] = append(s.lines[ord.ID], l)
	}
	return ord
}

func qty(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestAcceptOrderDerivesProductionItems(t *testing.T) {
	s := newFakeStore()
	s.addProduct(&entity.Product{
		ID: "prod-a", EstablishmentID: testEstab,
		Name: "Pão de Queijo", NormalizedName: "PAO DE QUEIJO", Unit: "KG",
	}, qty("4"))
	s.addProduct(&entity.Product{
		ID: "prod-b", EstablishmentID: testEstab,
		Name: "Coxinha", NormalizedName: "COXINHA", Unit: "UN",
	}, qty("5"))

	seedOrder(s, ordersm.StatusCriado,
		&entity.OrderLineItem{ID: "l1", ProductName: "Pão de Queijo", Quantity: qty("10"), Unit: "KG"},
		&entity.OrderLineItem{ID: "l2", ProductName: "Coxinha", Quantity: qty("2"), Unit: "UN"},
	)

	uc := newTestUseCase(s)
	require.NoError(t, uc.AcceptOrder(context.Background(), testActor(entity.RoleOperacao), "order-1"))

	items := s.items["order-1"]
	require.Len(t, items, 2)

	// Estoque (4) não cobre o pedido (10): produção pendente com a falta.
	assert.Equal(t, entity.ItemStatusPending, items[0].Status)
	assert.True(t, items[0].MissingQty.Equal(qty("6")), "falta = pedido - saldo")

	// Estoque (5) cobre o pedido (2): sem produção.
	assert.Equal(t, entity.ItemStatusNoProductionNeeded, items[1].Status)
	assert.True(t, items[1].MissingQty.IsZero())

	ord := s.orders["order-1"]
	assert.Equal(t, ordersm.StatusAceito, ord.Status)
	require.NotNil(t, ord.AcceptedBy)
	assert.Equal(t, testUser, *ord.AcceptedBy)
	require.Len(t, s.events, 1)
	assert.Equal(t, ordersm.StatusCriado, s.events[0].FromStatus)
	assert.Equal(t, ordersm.StatusAceito, s.events[0].ToStatus)
}

func TestAcceptOrderUnknownProductIsPending(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusCriado,
		&entity.OrderLineItem{ID: "l1", ProductName: "Produto Inédito", Quantity: qty("3"), Unit: "UN"},
	)

	uc := newTestUseCase(s)
	require.NoError(t, uc.AcceptOrder(context.Background(), testActor(entity.RoleAdmin), "order-1"))

	items := s.items["order-1"]
	require.Len(t, items, 1)
	assert.Nil(t, items[0].ProductID)
	assert.Equal(t, entity.ItemStatusPending, items[0].Status)
	assert.True(t, items[0].MissingQty.Equal(qty("3")), "sem produto no catálogo, falta tudo")
}

func TestAcceptOrderConsolidatesDuplicateLines(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusCriado,
		&entity.OrderLineItem{ID: "l1", ProductName: "Pão de Queijo", Quantity: qty("5"), Unit: "KG"},
		&entity.OrderLineItem{ID: "l2", ProductName: "pao de queijo", Quantity: qty("3"), Unit: "kg"},
	)

	uc := newTestUseCase(s)
	require.NoError(t, uc.AcceptOrder(context.Background(), testActor(entity.RoleProducao), "order-1"))

	items := s.items["order-1"]
	require.Len(t, items, 1, "linhas do mesmo produto+unidade devem consolidar")
	assert.True(t, items[0].Quantity.Equal(qty("8")))
}

func TestAcceptOrderRoleAndStatusChecks(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, ordersm.StatusCriado,
		&entity.OrderLineItem{ID: "l1", ProductName: "Coxinha", Quantity: qty("1"), Unit: "UN"},
	)
	uc := newTestUseCase(s)
	ctx := context.Background()

	err := uc.AcceptOrder(ctx, testActor(entity.RoleCliente), "order-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Pedido já aceito não aceita de novo.
	s.orders["order-1"].Status = ordersm.StatusAceito
	err = uc.AcceptOrder(ctx, testActor(entity.RoleAdmin), "order-1")
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Pedido de outro estabelecimento responde como não encontrado.
	s.orders["order-1"].Status = ordersm.StatusCriado
	s.orders["order-1"].EstablishmentID = "outro"
	err = uc.AcceptOrder(ctx, testActor(entity.RoleAdmin), "order-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrderValidation(t *testing.T) {
	s := newFakeStore()
	uc := newTestUseCase(s)
	ctx := context.Background()
	actor := testActor(entity.RoleOperacao)

	_, err := uc.CreateOrder(ctx, actor, dto.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pedido sem itens")

	_, err = uc.CreateOrder(ctx, actor, dto.CreateOrderRequest{
		Items: []dto.LineItemRequest{{ProductName: "Coxinha", Quantity: qty("0"), Unit: "UN"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade não positiva")

	out, err := uc.CreateOrder(ctx, actor, dto.CreateOrderRequest{
		Items: []dto.LineItemRequest{
			{ProductName: "Coxinha", Quantity: qty("2"), Unit: "un"},
			{ProductName: "coxinha", Quantity: qty("1"), Unit: "UN"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pedido_criado", out.Status)
	require.Len(t, s.lines[out.ID], 1, "itens duplicados consolidam na criação")
	assert.True(t, s.lines[out.ID][0].Quantity.Equal(qty("3")))
}
