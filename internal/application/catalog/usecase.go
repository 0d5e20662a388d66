// Package catalog mantém o CRUD mínimo de produtos que o núcleo precisa para
// resolver nomes digitados (aceitação, separação, contagem). O catálogo
// completo fica fora do escopo do núcleo.
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
	"github.com/cozinhapro/cozinha-api/pkg/normalize"
)

var writeRoles = []string{entity.RoleAdmin, entity.RoleOperacao, entity.RoleEstoque}

// UseCase CRUD mínimo de produtos.
type UseCase struct {
	productRepo repository.ProductRepository
}

// NewUseCase constrói o caso de uso de catálogo.
func NewUseCase(productRepo repository.ProductRepository) *UseCase {
	return &UseCase{productRepo: productRepo}
}

// Create cadastra um produto; o nome normalizado é gravado junto para os
// matchings por nome serem resolvidos por índice.
func (uc *UseCase) Create(ctx context.Context, actor domain.Actor, name, unit string) (*entity.Product, error) {
	allowed := false
	for _, r := range writeRoles {
		if r == actor.Role {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	normalized := normalize.Name(name)
	existing, err := uc.productRepo.GetByNormalizedName(actor.EstablishmentID, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		EstablishmentID: actor.EstablishmentID,
		Name:            name,
		NormalizedName:  normalized,
		Unit:            normalize.Unit(unit),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID devolve o produto escopado ao estabelecimento do ator.
func (uc *UseCase) GetByID(ctx context.Context, actor domain.Actor, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista os produtos do estabelecimento.
func (uc *UseCase) List(ctx context.Context, actor domain.Actor, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.ListByEstablishment(actor.EstablishmentID, limit, offset)
}
