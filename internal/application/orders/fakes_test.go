package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// Fakes em memória para os testes do ciclo de vida do pedido.

type fakeStore struct {
	orders   map[string]*entity.Order
	lines    map[string][]*entity.OrderLineItem // por orderID
	items    map[string][]*entity.OrderItem     // por orderID
	events   []*entity.OrderStatusEvent
	balances map[string]decimal.Decimal // establishmentID|productID|unit
	products map[string]*entity.Product // establishmentID|normalizedName
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:   map[string]*entity.Order{},
		lines:    map[string][]*entity.OrderLineItem{},
		items:    map[string][]*entity.OrderItem{},
		balances: map[string]decimal.Decimal{},
		products: map[string]*entity.Product{},
	}
}

func (s *fakeStore) addProduct(p *entity.Product, balance decimal.Decimal) {
	s.products[p.EstablishmentID+"|"+p.NormalizedName] = p
	s.balances[p.EstablishmentID+"|"+p.ID+"|"+p.Unit] = balance
}

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error { r.s.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.s.orders[id], nil
}
func (r *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	return r.s.orders[id], nil
}
func (r *fakeOrderRepo) Update(o *entity.Order) error { r.s.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) NextNumber(string) (int64, error) {
	return int64(len(r.s.orders) + 1), nil
}
func (r *fakeOrderRepo) ListByEstablishment(establishmentID, status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		if o.EstablishmentID == establishmentID && (status == "" || o.Status == status) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeLineRepo struct{ s *fakeStore }

func (r *fakeLineRepo) BulkCreate(items []*entity.OrderLineItem) error {
	for _, it := range items {
		r.s.lines[it.OrderID] = append(r.s.lines[it.OrderID], it)
	}
	return nil
}
func (r *fakeLineRepo) ListByOrder(orderID string) ([]*entity.OrderLineItem, error) {
	return r.s.lines[orderID], nil
}

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) ReplaceForOrder(orderID string, items []*entity.OrderItem) error {
	r.s.items[orderID] = items
	return nil
}
func (r *fakeItemRepo) GetByID(id string) (*entity.OrderItem, error) {
	for _, items := range r.s.items {
		for _, it := range items {
			if it.ID == id {
				return it, nil
			}
		}
	}
	return nil, nil
}
func (r *fakeItemRepo) Update(item *entity.OrderItem) error {
	for orderID, items := range r.s.items {
		for i, it := range items {
			if it.ID == item.ID {
				r.s.items[orderID][i] = item
			}
		}
	}
	return nil
}
func (r *fakeItemRepo) ListByOrder(orderID string) ([]*entity.OrderItem, error) {
	return r.s.items[orderID], nil
}

type fakeEventRepo struct{ s *fakeStore }

func (r *fakeEventRepo) Create(e *entity.OrderStatusEvent) error {
	r.s.events = append(r.s.events, e)
	return nil
}
func (r *fakeEventRepo) ListByOrder(orderID string) ([]*entity.OrderStatusEvent, error) {
	var out []*entity.OrderStatusEvent
	for _, e := range r.s.events {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeMovRepo struct{ s *fakeStore }

func (r *fakeMovRepo) Create(m *entity.StockMovement) error {
	key := m.EstablishmentID + "|" + m.ProductID + "|" + m.Unit
	r.s.balances[key] = r.s.balances[key].Add(m.Signed())
	return nil
}
func (r *fakeMovRepo) ExistsByLabelAndType(string, string) (bool, error) { return false, nil }
func (r *fakeMovRepo) Balance(establishmentID, productID, unit string) (decimal.Decimal, error) {
	return r.s.balances[establishmentID+"|"+productID+"|"+unit], nil
}
func (r *fakeMovRepo) ListByProduct(string, string, *time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) GetByNormalizedName(establishmentID, normalizedName string) (*entity.Product, error) {
	return r.s.products[establishmentID+"|"+normalizedName], nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) ListByEstablishment(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

// fakeTxRunner executa o callback diretamente sobre o store, sem transação.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineItemRepository,
	itemRepo repository.OrderItemRepository,
	eventRepo repository.OrderEventRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(
		&fakeOrderRepo{t.s}, &fakeLineRepo{t.s}, &fakeItemRepo{t.s},
		&fakeEventRepo{t.s}, &fakeMovRepo{t.s}, &fakeProductRepo{t.s},
	)
}

// newTestUseCase monta o caso de uso sobre um store em memória.
func newTestUseCase(s *fakeStore) *UseCase {
	return NewUseCase(&fakeTxRunner{s}, &fakeOrderRepo{s}, &fakeItemRepo{s}, &fakeEventRepo{s})
}
