package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cozinhapro/cozinha-api/internal/application/labels"
	"github.com/cozinhapro/cozinha-api/internal/application/orders"
	"github.com/cozinhapro/cozinha-api/internal/application/stock"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// Garantias de que TxRunner satisfaz os runners das camadas de aplicação.
var _ orders.TxRunner = (*TxRunner)(nil)
var _ labels.TxRunner = (*TxRunner)(nil)
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia uma transação com os repositórios do ciclo de vida do pedido.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineItemRepository,
	itemRepo repository.OrderItemRepository,
	eventRepo repository.OrderEventRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	lineRepo := NewOrderLineItemRepository(tx)
	itemRepo := NewOrderItemRepository(tx)
	eventRepo := NewOrderEventRepository(tx)
	movRepo := NewStockMovementRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(orderRepo, lineRepo, itemRepo, eventRepo, movRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLabel inicia uma transação com os repositórios do protocolo de etiquetas
// (criação idempotente e consumo na separação).
func (r *TxRunner) RunLabel(ctx context.Context, fn func(
	labelRepo repository.LabelRepository,
	movRepo repository.StockMovementRepository,
	linkRepo repository.OrderLabelLinkRepository,
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	labelRepo := NewLabelRepository(tx)
	movRepo := NewStockMovementRepository(tx)
	linkRepo := NewOrderLabelLinkRepository(tx)
	orderRepo := NewOrderRepository(tx)
	itemRepo := NewOrderItemRepository(tx)

	if err := fn(labelRepo, movRepo, linkRepo, orderRepo, itemRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCount inicia uma transação por item da contagem de estoque.
func (r *TxRunner) RunCount(ctx context.Context, fn func(
	countRepo repository.InventoryCountRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	countRepo := NewInventoryCountRepository(tx)
	movRepo := NewStockMovementRepository(tx)

	if err := fn(countRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
