package stock

import (
	"context"

	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// TxRunner executa uma função em transação com repositórios atados a ela.
// Na contagem de estoque a atomicidade é por item: o par registro-de-item +
// movimento de ajuste commita junto; o lote como um todo é best-effort.
type TxRunner interface {
	RunCount(ctx context.Context, fn func(
		countRepo repository.InventoryCountRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
