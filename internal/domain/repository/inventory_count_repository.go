package repository

import "github.com/cozinhapro/cozinha-api/internal/domain/entity"

// InventoryCountRepository define a porta das sessões de contagem de estoque.
type InventoryCountRepository interface {
	Create(count *entity.InventoryCount) error
	GetByID(id string) (*entity.InventoryCount, error)
	// UpdateSummary grava totais finais e FinishedAt no cabeçalho da sessão.
	UpdateSummary(count *entity.InventoryCount) error
	CreateItem(item *entity.InventoryCountItem) error
	ListItems(countID string) ([]*entity.InventoryCountItem, error)
}
