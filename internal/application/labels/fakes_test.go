package labels

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// Fakes em memória para os testes do ciclo de vida das etiquetas.

type fakeStore struct {
	labels    map[string]*entity.InventoryLabel // por ID
	movements []*entity.StockMovement
	links     []*entity.OrderLabelLink
	orders    map[string]*entity.Order
	items     map[string][]*entity.OrderItem    // por orderID
	products  map[string]*entity.Product        // por ID
	estabs    map[string]*entity.Establishment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		labels:   map[string]*entity.InventoryLabel{},
		orders:   map[string]*entity.Order{},
		items:    map[string][]*entity.OrderItem{},
		products: map[string]*entity.Product{},
		estabs:   map[string]*entity.Establishment{},
	}
}

func (s *fakeStore) movementsOf(labelID, movType string) []*entity.StockMovement {
	var out []*entity.StockMovement
	for _, m := range s.movements {
		if m.LabelID != nil && *m.LabelID == labelID && m.Type == movType {
			out = append(out, m)
		}
	}
	return out
}

type fakeLabelRepo struct{ s *fakeStore }

func (r *fakeLabelRepo) Create(l *entity.InventoryLabel) error { r.s.labels[l.ID] = l; return nil }
func (r *fakeLabelRepo) GetByID(id string) (*entity.InventoryLabel, error) {
	return r.s.labels[id], nil
}
func (r *fakeLabelRepo) GetByCode(establishmentID, code string) (*entity.InventoryLabel, error) {
	for _, l := range r.s.labels {
		if l.EstablishmentID == establishmentID && l.Code == code {
			return l, nil
		}
	}
	return nil, nil
}
func (r *fakeLabelRepo) GetByCodeForUpdate(establishmentID, code string) (*entity.InventoryLabel, error) {
	return r.GetByCode(establishmentID, code)
}
func (r *fakeLabelRepo) Update(l *entity.InventoryLabel) error { r.s.labels[l.ID] = l; return nil }
func (r *fakeLabelRepo) ListByEstablishment(establishmentID, status string, limit, offset int) ([]*entity.InventoryLabel, error) {
	var out []*entity.InventoryLabel
	for _, l := range r.s.labels {
		if l.EstablishmentID == establishmentID && (status == "" || l.Status == status) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeMovRepo struct{ s *fakeStore }

func (r *fakeMovRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *fakeMovRepo) ExistsByLabelAndType(labelID, movType string) (bool, error) {
	return len(r.s.movementsOf(labelID, movType)) > 0, nil
}
func (r *fakeMovRepo) Balance(establishmentID, productID, unit string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.s.movements {
		if m.EstablishmentID == establishmentID && m.ProductID == productID && m.Unit == unit {
			total = total.Add(m.Signed())
		}
	}
	return total, nil
}
func (r *fakeMovRepo) ListByProduct(string, string, *time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

type fakeLinkRepo struct{ s *fakeStore }

func (r *fakeLinkRepo) Create(l *entity.OrderLabelLink) error {
	r.s.links = append(r.s.links, l)
	return nil
}
func (r *fakeLinkRepo) ListByOrder(orderID string) ([]*entity.OrderLabelLink, error) {
	var out []*entity.OrderLabelLink
	for _, l := range r.s.links {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error                      { r.s.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error)          { return r.s.orders[id], nil }
func (r *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) { return r.s.orders[id], nil }
func (r *fakeOrderRepo) Update(o *entity.Order) error                      { r.s.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) NextNumber(string) (int64, error)                  { return 1, nil }
func (r *fakeOrderRepo) ListByEstablishment(string, string, int, int) ([]*entity.Order, error) {
	return nil, nil
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
func (r *fakeItemRepo) Update(*entity.OrderItem) error { return nil }
func (r *fakeItemRepo) ListByOrder(orderID string) ([]*entity.OrderItem, error) {
	return r.s.items[orderID], nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetByNormalizedName(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) ListByEstablishment(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeEstabRepo struct{ s *fakeStore }

func (r *fakeEstabRepo) Create(e *entity.Establishment) error { r.s.estabs[e.ID] = e; return nil }
func (r *fakeEstabRepo) GetByID(id string) (*entity.Establishment, error) {
	return r.s.estabs[id], nil
}
func (r *fakeEstabRepo) List(int, int) ([]*entity.Establishment, error) { return nil, nil }

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) RunLabel(ctx context.Context, fn func(
	labelRepo repository.LabelRepository,
	movRepo repository.StockMovementRepository,
	linkRepo repository.OrderLabelLinkRepository,
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
) error) error {
	return fn(&fakeLabelRepo{t.s}, &fakeMovRepo{t.s}, &fakeLinkRepo{t.s}, &fakeOrderRepo{t.s}, &fakeItemRepo{t.s})
}

type fakePDF struct{}

func (fakePDF) GenerateLabelPDF(context.Context, *entity.InventoryLabel, *entity.Establishment) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func newTestUseCase(s *fakeStore) *UseCase {
	return NewUseCase(&fakeTxRunner{s}, &fakeLabelRepo{s}, &fakeProductRepo{s}, &fakeEstabRepo{s}, fakePDF{})
}
