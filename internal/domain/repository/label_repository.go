package repository

import "github.com/cozinhapro/cozinha-api/internal/domain/entity"

// LabelRepository define a porta de persistência de etiquetas de estoque.
type LabelRepository interface {
	Create(label *entity.InventoryLabel) error
	GetByID(id string) (*entity.InventoryLabel, error)
	GetByCode(establishmentID, code string) (*entity.InventoryLabel, error)
	// GetByCodeForUpdate bloqueia a linha da etiqueta (SELECT FOR UPDATE) para
	// que dois consumidores simultâneos não passem ambos pela checagem de saldo.
	GetByCodeForUpdate(establishmentID, code string) (*entity.InventoryLabel, error)
	Update(label *entity.InventoryLabel) error
	ListByEstablishment(establishmentID, status string, limit, offset int) ([]*entity.InventoryLabel, error)
}

// OrderLabelLinkRepository define a porta dos vínculos pedido × etiqueta.
type OrderLabelLinkRepository interface {
	Create(link *entity.OrderLabelLink) error
	ListByOrder(orderID string) ([]*entity.OrderLabelLink, error)
}
