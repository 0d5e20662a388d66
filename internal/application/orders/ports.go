package orders

import (
	"context"

	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Toda operação do ciclo de vida do
// pedido agrupa sua sequência ler-validar-gravar em um commit atômico.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		lineRepo repository.OrderLineItemRepository,
		itemRepo repository.OrderItemRepository,
		eventRepo repository.OrderEventRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
