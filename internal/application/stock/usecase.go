package stock

import (
	"context"
	"time"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
	"github.com/cozinhapro/cozinha-api/pkg/normalize"
)

// UseCase expõe o saldo calculado do razão e a reconciliação de estoque.
type UseCase struct {
	txRunner    TxRunner
	movRepo     repository.StockMovementRepository
	countRepo   repository.InventoryCountRepository
	productRepo repository.ProductRepository
}

// NewUseCase constrói o caso de uso de estoque.
func NewUseCase(
	txRunner TxRunner,
	movRepo repository.StockMovementRepository,
	countRepo repository.InventoryCountRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo, countRepo: countRepo, productRepo: productRepo}
}

// Balance devolve o saldo de produto+unidade: soma assinada dos movimentos,
// nunca um contador gravado.
func (uc *UseCase) Balance(ctx context.Context, actor domain.Actor, productID, unit string) (*dto.BalanceResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}
	u := normalize.Unit(unit)
	if u == "" {
		u = product.Unit
	}
	balance, err := uc.movRepo.Balance(actor.EstablishmentID, productID, u)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{ProductID: productID, Unit: u, Balance: balance}, nil
}

// Movements lista os movimentos de um produto no período.
func (uc *UseCase) Movements(ctx context.Context, actor domain.Actor, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByProduct(actor.EstablishmentID, productID, from, to, limit, offset)
}
