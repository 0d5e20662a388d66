package repository

import "github.com/cozinhapro/cozinha-api/internal/domain/entity"

// ProductRepository define a porta de persistência do catálogo de produtos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByNormalizedName resolve produto por nome canônico (sem acentos,
	// maiúsculas) dentro do estabelecimento. nil, nil quando não existe.
	GetByNormalizedName(establishmentID, normalizedName string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByEstablishment(establishmentID string, limit, offset int) ([]*entity.Product, error)
}
