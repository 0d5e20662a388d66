package production

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

type fakeItemRepo struct {
	items map[string]*entity.OrderItem
}

func (r *fakeItemRepo) ReplaceForOrder(string, []*entity.OrderItem) error { return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.OrderItem, error)      { return r.items[id], nil }
func (r *fakeItemRepo) Update(item *entity.OrderItem) error {
	r.items[item.ID] = item
	return nil
}
func (r *fakeItemRepo) ListByOrder(string) ([]*entity.OrderItem, error) { return nil, nil }

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (r *fakeOrderRepo) Create(*entity.Order) error                        { return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error)          { return r.orders[id], nil }
func (r *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) { return r.orders[id], nil }
func (r *fakeOrderRepo) Update(*entity.Order) error                        { return nil }
func (r *fakeOrderRepo) NextNumber(string) (int64, error)                  { return 1, nil }
func (r *fakeOrderRepo) ListByEstablishment(string, string, int, int) ([]*entity.Order, error) {
	return nil, nil
}

type fakeProductivityRepo struct {
	records []*entity.ProductivityRecord
	fail    error
}

func (r *fakeProductivityRepo) Create(rec *entity.ProductivityRecord) error {
	if r.fail != nil {
		return r.fail
	}
	r.records = append(r.records, rec)
	return nil
}

func setup(itemStatus string) (*UseCase, *fakeItemRepo, *fakeProductivityRepo) {
	items := &fakeItemRepo{items: map[string]*entity.OrderItem{
		"item-1": {
			ID: "item-1", OrderID: "order-1", ProductName: "Coxinha",
			Quantity: decimal.NewFromInt(10), Status: itemStatus,
		},
	}}
	orders := &fakeOrderRepo{orders: map[string]*entity.Order{
		"order-1": {ID: "order-1", EstablishmentID: testEstab, Status: ordersm.StatusEmPreparo},
	}}
	productivity := &fakeProductivityRepo{}
	return NewUseCase(items, orders, productivity), items, productivity
}

func TestStartItemRequiresCollaborator(t *testing.T) {
	uc, items, _ := setup(entity.ItemStatusPending)
	ctx := context.Background()

	err := uc.StartItem(ctx, testActor(entity.RoleLider), "item-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sem colaborador não inicia")

	require.NoError(t, uc.AssignCollaborator(ctx, testActor(entity.RoleLider), "item-1", "colab-7"))
	require.NoError(t, uc.StartItem(ctx, testActor(entity.RoleLider), "item-1"))

	got := items.items["item-1"]
	assert.Equal(t, entity.ItemStatusInProgress, got.Status)
	require.NotNil(t, got.StartedAt)
}

func TestStartItemRoleChecks(t *testing.T) {
	uc, _, _ := setup(entity.ItemStatusPending)
	ctx := context.Background()

	err := uc.StartItem(ctx, testActor(entity.RoleProducao), "item-1")
	assert.ErrorIs(t, err, domain.ErrForbidden, "produção não inicia, só finaliza")

	err = uc.AssignCollaborator(ctx, testActor(entity.RoleEstoque), "item-1", "colab-7")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestFinishItemRecordsProductivity(t *testing.T) {
	uc, items, productivity := setup(entity.ItemStatusInProgress)
	started := time.Now().Add(-90 * time.Second)
	collab := "colab-7"
	items.items["item-1"].StartedAt = &started
	items.items["item-1"].CollaboratorID = &collab

	sideEffects, err := uc.FinishItem(context.Background(), testActor(entity.RoleProducao), "item-1")
	require.NoError(t, err)
	assert.Empty(t, sideEffects)

	got := items.items["item-1"]
	assert.Equal(t, entity.ItemStatusDone, got.Status)
	require.NotNil(t, got.FinishedAt)

	require.Len(t, productivity.records, 1)
	rec := productivity.records[0]
	assert.Equal(t, "colab-7", rec.CollaboratorID)
	assert.GreaterOrEqual(t, rec.DurationSeconds, int64(90))
}

func TestFinishItemProductivityFailureIsSideEffect(t *testing.T) {
	uc, items, productivity := setup(entity.ItemStatusInProgress)
	productivity.fail = errors.New("tabela indisponível")

	sideEffects, err := uc.FinishItem(context.Background(), testActor(entity.RoleLider), "item-1")
	require.NoError(t, err, "falha de produtividade nunca falha a transição")
	require.Len(t, sideEffects, 1)
	assert.ErrorIs(t, sideEffects[0], productivity.fail)
	assert.Equal(t, entity.ItemStatusDone, items.items["item-1"].Status)
}

func TestFinishItemStatusGuard(t *testing.T) {
	uc, _, _ := setup(entity.ItemStatusPending)

	_, err := uc.FinishItem(context.Background(), testActor(entity.RoleAdmin), "item-1")
	assert.ErrorIs(t, err, domain.ErrConflict, "só finaliza o que está em andamento")
}
