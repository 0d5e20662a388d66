package labels

import (
	"context"

	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco com os
// repositórios atados a ela. O protocolo de separação exige atomicidade:
// movimento + vínculo + atualização da etiqueta, tudo ou nada, senão o
// invariante razão→saldo corrompe.
type TxRunner interface {
	RunLabel(ctx context.Context, fn func(
		labelRepo repository.LabelRepository,
		movRepo repository.StockMovementRepository,
		linkRepo repository.OrderLabelLinkRepository,
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderItemRepository,
	) error) error
}

// PDFGenerator gera a folha imprimível da etiqueta (QR + dados do produto).
type PDFGenerator interface {
	GenerateLabelPDF(ctx context.Context, label *entity.InventoryLabel, establishment *entity.Establishment) ([]byte, error)
}
